// Package kv is pigcat's durable key-value storage, the terminal stand-in for
// a browser's local storage.
//
// # Drivers
//
//   - sqlite: a single kv table in a modernc.org/sqlite database (default)
//   - file: one TOML document mapping key to value, rewritten on every Set
//   - redis: a shared Redis instance, keys prefixed with the namespace
//   - memory: an in-process map for tests and --ephemeral sessions
//
// Every driver offers read-your-writes: a Get that follows a successful Set of
// the same key observes the new value. Values are opaque strings; encoding is
// the caller's concern.
//
// Missing keys are not errors. Get reports them with ok=false.
package kv
