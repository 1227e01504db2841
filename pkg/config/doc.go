// Package config loads fontinstall configuration.
//
// Sources are layered, later ones winning: the embedded defaults.toml,
// the user's config.toml, FONTINSTALL_* environment variables and finally
// explicitly set command-line flags.
package config
