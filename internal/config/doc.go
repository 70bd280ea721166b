// Package config loads pigcat's configuration.
//
// # Resolution order
//
//  1. Built-in defaults (Default)
//  2. The TOML file given with --config, else ~/.config/pigcat/config.toml.
//     A missing file is fine; a malformed one is an error.
//  3. Environment variables with the PIGCAT_ prefix, one per field:
//     PIGCAT_STORAGE_DRIVER, PIGCAT_AI_API_KEY, PIGCAT_ADMIN_PASSWORD, ...
//
// # File layout
//
//	[storage]
//	driver = "sqlite"          # sqlite | file | redis | memory
//	path = "~/.local/share/pigcat/pigcat.db"
//	redis_url = ""             # required for driver = "redis"
//	namespace = "pigcat"
//
//	[ai]
//	provider = "none"          # none | openai | anthropic | openai-compatible
//	model = ""
//	dream_model = ""
//	api_key = ""
//	endpoint = ""
//	timeout = "30s"
//
//	[admin]
//	password = "1234"
//
//	[ui]
//	slideshow_interval = "4s"
//	theme = "site" # site, win98 or terminal
//
//	[log]
//	path = "~/.local/state/pigcat/pigcat.log"
//	level = "info"
//
// Paths beginning with ~ are expanded against the user's home directory.
package config
