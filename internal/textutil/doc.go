// Package textutil provides text processing utilities for tokenization,
// similarity scoring, and canonical key derivation.
//
// The primary use cases are:
//   - Word-tokenizing titles for duplicate comparison
//   - Computing Jaccard similarity between token sets
//   - Canonicalizing free-form category names into snake_case keys
//
// Tokenization lowercases text and splits on runes outside the unicode
// letter and number classes, so titles in any script tokenize. Every
// non-empty token participates; similarity is over unique tokens.
package textutil
