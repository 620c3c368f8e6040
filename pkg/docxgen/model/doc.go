// Package model holds the in-memory document that the builder grows.
//
// A Document is an ordered sequence of blocks (paragraphs and tables). It is
// append-only: Append never modifies the receiver, it returns a new Document
// with one more block. Blocks are owned by the document once appended and are
// never edited in place.
//
// The model knows nothing about WordprocessingML. The packager package turns a
// finished Document into a zip package; any other serializer can consume the
// same types.
package model
