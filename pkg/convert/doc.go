// Package convert turns any supported container into the bytes of a
// native font ready to be written to a font directory.
//
// Native TrueType and OpenType files pass through unchanged. WOFF 1.0 is
// unwrapped in process. WOFF 2.0 needs glyph reconstruction and is handed
// to an external woff2_decompress binary, which is probed on every call
// and run inside a private temporary directory.
package convert
