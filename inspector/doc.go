// Package inspector provides a Bubble Tea component that renders a live
// hex view of a sparse.Buffer: an offset gutter, hex and ASCII columns
// with loaded bytes and zero fill styled apart, a one-line range map,
// and a status line.
//
// The component never mutates the buffer. Hosts drive loads, removals,
// and seeks directly against the buffer; the inspector picks the changes
// up through the buffer's version counter.
package inspector
