// Package wire owns the primitive SSH 2.0 wire-format codecs.
//
// Ownership boundary:
// - length-prefixed byte strings (string, mpint)
// - utf-8 / ascii constrained strings
// - comma-separated name-lists
// - booleans and fixed-width integers
//
// Encoders append to a caller-provided buffer; decoders consume from the
// front of a buffer and return the unread remainder. Types and layouts
// follow RFC 4251 section 5.
package wire
