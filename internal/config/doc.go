// Package config loads and validates lyricsync configuration.
//
// Configuration is TOML, resolved from an explicit path, then
// ~/.config/lyricsync/config.toml, then ./lyricsync.toml. Defaults cover every
// field so the tool runs with no config file at all. The heuristic constants
// driving segmentation and timestamp repair live here as tunable fields
// rather than inlined literals so tests can probe boundary values.
package config
