// Package games holds the portal's game library: the records the grid
// lays out and the HTTP API lists.
//
// A [Library] is immutable. Use [Default] for the built-in list, or
// [LoadFile] for a TOML, YAML or JSON file:
//
//	[[game]]
//	id = "flappy-dwb"
//	title = "Flappy DWB"
//	difficulty = "Medium"
//	category = "Arcade"
//	available = true
//
// [Source] serves a file-backed library and reloads it when the file
// changes, so a running server picks up edits without a restart.
package games
