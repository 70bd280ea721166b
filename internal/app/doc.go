// Package app is the composition root for pigcat.
//
// # Overview
//
// Open loads configuration and builds the shared dependencies in order:
//
//	┌──────────────┐
//	│   Open()     │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     TOML file + PIGCAT_* environment
//	       ├─────> logging.New()     JSON log file
//	       ├─────> kv.Open()         sqlite, file, redis or memory
//	       ├─────> state.Open()      load and migrate every record
//	       ├─────> ai.Open()         provider-backed or fallback-only gateway
//	       └─────> NewAdminGate()    owner password check
//
// Run then records the visit, starts the slideshow ticker and blocks in
// ui.Run. The non-interactive commands (Dream, Export, ResetSettings,
// ShowConfig) open the same environment and exit.
//
// # Error Handling
//
// Fatal (returned):
//   - unreadable or invalid configuration
//   - storage that cannot be opened or read
//
// Logged and tolerated:
//   - an AI provider that cannot be built; every call uses its fallback text
//   - a visit counter failure; the header shows zeros
//   - malformed records; the default is used and a diagnostic is kept for
//     the dashboard
package app
