// Package container reads the table structure of font files.
//
// Three containers are understood:
//
//   - sfnt: the native TrueType ('\x00\x01\x00\x00', 'true') and
//     OpenType/CFF ('OTTO') layout, a table directory followed by tables
//   - WOFF 1.0 ('wOFF'): sfnt tables individually zlib-compressed
//   - WOFF 2.0 ('wOF2'): one brotli stream holding all tables, some of
//     them transformed
//
// WOFF tables can be fully decoded and re-encoded as an sfnt. For WOFF 2.0
// only untransformed tables (everything but glyf, loca and possibly hmtx)
// can be read; rebuilding the outlines is left to an external tool.
// Collections ('ttcf') are rejected.
package container
