// Package install runs the single-file install pipeline:
//
//  1. the source must be an existing regular file
//  2. its container format is detected
//  3. its identity (full name) is read
//  4. the destination is resolved and created
//  5. an existing target, or on Linux system installs a same-named font in
//     the other family's directory, means the font is already present
//  6. otherwise the font is converted if needed and written atomically
//
// Every outcome, including panics, is reported as a types.InstallResult;
// Install never returns an error.
package install
