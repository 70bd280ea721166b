// Package site defines the homepage's persisted records, their built-in
// defaults, and the settings schema migration.
//
// Every type here is plain data. Ownership and persistence live in the state
// package; this package only knows what a valid record looks like and how an
// older settings record is reshaped into the current one.
//
// # Settings Migration
//
// Settings written by earlier releases carried a single mainImageUrl and no
// mainImages list. DecodeSettings accepts both shapes and Migrate fills the
// list from the legacy field (or the default image) so the slideshow always
// has at least one image:
//
//	s, err := site.DecodeSettings(raw)
//	if err != nil {
//		// *site.DecodeError; caller falls back to DefaultSettings()
//	}
//	s = site.Migrate(s)
package site
