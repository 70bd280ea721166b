// Package state owns pigcat's persisted application state.
//
// # Overview
//
// State is split into independent slices, each stored under its own key in a
// kv.Store:
//
//	pigcat_settings_v6_bitmap  site.Settings (migrated on load)
//	pigcat_entries             []site.DiaryEntry, newest first
//	pigcat_total_claps         int
//	pigcat_clap_messages       []site.ClapMessage, newest first
//	pigcat_banners             []site.Banner, insertion order
//
// A Slice loads once at startup (default when absent) and re-encodes its whole
// value on every accepted change. There is no batching, diffing or debounce: a
// read that follows a write always sees the write.
//
// # Store
//
// Store is the single owner of every slice. The UI holds a *Store and calls its
// typed operations; nothing else writes the kv keys. Operations validate their
// input first (returning site sentinel errors), then persist, then commit the
// new value in memory, so a failed write leaves the in-memory state unchanged.
//
// Slices are independent. A crash between two slice writes can leave them out
// of step, which is acceptable because each slice means something on its own.
//
// # Malformed Records
//
// A record that cannot be decoded is replaced in memory by the slice default.
// The failure is logged and kept as a Diagnostic for the admin dashboard. The
// stored record is left as-is until the next accepted change overwrites it.
//
// # Concurrency
//
// Store is guarded by a sync.RWMutex. The Bubble Tea update loop is the only
// writer in practice, but AI completions are delivered from command
// goroutines and read the store while the loop may be rendering.
package state
