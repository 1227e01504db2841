// Package detect classifies files as one of the supported font
// containers.
//
// The default mode sniffs content with mimetype and never trusts the
// extension. Fast mode trusts the extension and reads nothing, which is
// useful for large directory scans where file names are known to be
// honest.
package detect
