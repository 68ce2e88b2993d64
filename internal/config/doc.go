// Package config handles loading and parsing Shelf's configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shelf/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	search_url = "https://openlibrary.org/search.json"
//	covers_url = "https://covers.openlibrary.org"
//	library_url = "https://openlibrary.org"
//	archive_url = "https://archive.org"
//	default_query = "Book"
//	log_file = "~/.local/state/shelf/shelf.log"
//	log_level = "info"
//	requests_per_second = 1
//	request_timeout = ""
//
// Every field is optional. Two fields treat "present but empty" specially:
//
//   - log_file = "" disables logging entirely
//   - request_timeout = "" (the default) applies no timeout, so a hung
//     search keeps the loading indicator up until the user quits
//
// requests_per_second = 0 turns off client-side pacing.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Unparsable or negative request_timeout values
//
// Missing config files are NOT an error.
//
// # Injected Hosts
//
// The cover CDN, library and archive hosts are configuration rather than
// constants so that the UI receives them through Config.Links and never
// reaches for a global.
package config
