package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrDetect is returned when neither the file extension nor the
// content shape identifies a format.
var ErrDetect = errors.New("cannot determine file format")

// Detect classifies a document by path extension first (authoritative)
// and, failing that, by sniffing the first non-whitespace characters of
// content: '{' or '[' means JSON, a leading '-' or the presence of ':'
// means YAML.
func Detect(path string, content []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONFormat, nil
	case ".yaml", ".yml":
		return YAMLFormat, nil
	}
	text := strings.TrimSpace(string(content))
	if text == "" {
		return 0, fmt.Errorf("%w: %s", ErrDetect, path)
	}
	if text[0] == '{' || text[0] == '[' {
		return JSONFormat, nil
	}
	if text[0] == '-' || strings.ContainsRune(text, ':') {
		return YAMLFormat, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrDetect, path)
}
