package types

import (
	"fmt"
	"runtime"
	"strings"
)

// Scope controls who can see an installed font.
type Scope string

const (
	ScopeUser   Scope = "user"
	ScopeSystem Scope = "system"
)

// ParseScope parses "user" or "system". "global" is accepted as an alias
// for system.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "user", "local":
		return ScopeUser, nil
	case "system", "global":
		return ScopeSystem, nil
	}
	return "", fmt.Errorf("unknown scope %q (want user or system)", s)
}

// Platform selects the destination directory layout. Anything other than
// linux is treated as the macOS layout.
type Platform string

const (
	PlatformLinux  Platform = "linux"
	PlatformDarwin Platform = "darwin"
)

// CurrentPlatform returns the platform of the running process.
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// IsLinux reports whether p uses the format-segregated Linux layout.
func (p Platform) IsLinux() bool {
	return p == PlatformLinux
}

// ParsePlatform accepts linux, darwin or macos. Empty means the running
// platform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CurrentPlatform(), nil
	case "linux":
		return PlatformLinux, nil
	case "darwin", "macos":
		return PlatformDarwin, nil
	}
	return "", fmt.Errorf("unknown platform %q (want linux or darwin)", s)
}
