// Package imaging keeps embedded pictures small.
//
// The Ingestor decides from the raw byte length whether a picture needs work.
// Buffers at or below the threshold pass through untouched. Larger ones go to
// Compress, which decodes, shrinks to fit the display box with a Lanczos3
// filter (never enlarging) and re-encodes as JPEG. If any of that fails the
// Ingestor hands back the original bytes together with the error so the caller
// can still embed the picture.
//
// Decoding understands PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image.
package imaging
