// Package types defines the core types and interfaces used throughout
// fontinstall. This includes the container Format and its destination
// Family, installation Scope and Platform, the font Identity used as the
// deduplication key, InstallResult, and the Options accepted by the
// install pipeline and directory scanner.
package types
