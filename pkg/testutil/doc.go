// Package testutil provides utilities for testing fontinstall components.
//
// Key components:
//   - Font fixtures built in memory from the Go font family: native
//     TrueType, an OpenType-tagged variant, and WOFF / WOFF2 wrappings
//   - FakeTool: a /bin/sh stand-in for woff2_decompress that honours the
//     real tool's usage message and output naming, and records calls
//   - AferoFS: a types.FS over afero with per-operation error injection
//
// Usage guidelines:
//   - All fixtures are generated inline, never read from external files
//   - Each test gets its own t.TempDir() sandbox; no shared state
//   - Use FullName to learn a fixture's identity instead of hardcoding it
package testutil
