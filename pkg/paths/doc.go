// Package paths resolves where fonts are installed.
//
// Destination directories depend on scope, format family and platform:
//
//   - Linux, system scope: /usr/share/fonts/truetype or /usr/share/fonts/opentype
//   - Linux, user scope: ~/.fonts for both families
//   - Any other platform, system scope: /Library/Fonts
//   - Any other platform, user scope: ~/Library/Fonts
//
// Resolve is the pure mapping. Layout binds it to a home directory and an
// optional destination root, which is prepended to every directory the way
// DESTDIR is for packaging.
//
// # Usage
//
//	layout, err := paths.NewLayout(opts)
//	if err != nil {
//	    return err
//	}
//	target := layout.Target(types.ScopeUser, types.FamilyTrueType, "Inter Black")
//	// target.Path() == /home/user/.fonts/Inter Black.ttf
package paths
