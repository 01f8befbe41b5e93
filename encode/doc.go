// Package encode renders ir document trees to canonical text.
//
// The emitters are deliberately dumb: they write fields and elements
// in the order the tree carries them. Producing sorted output is the
// canon package's job; producing text from the result is this one's.
package encode
