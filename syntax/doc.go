// Package syntax implements markdown construct toggling as pure functions
// over a document.Document.
//
// Every operation is a toggle: it detects whether the construct is already
// present at the selection and removes it, otherwise it applies it.
// Detection always wins over application, so applying the same toggle twice
// restores the original text. All operations are total; out-of-range
// selections clamp instead of failing.
package syntax
