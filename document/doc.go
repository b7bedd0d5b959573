// Package document implements the pure document model for markpad.
//
// A Document is a flat UTF-8 string plus a Selection expressed in byte
// offsets. Every transformation takes a Document by value and returns a new
// one; the host owns the single current Document and replaces it wholesale
// after each edit.
package document
