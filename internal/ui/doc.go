// Package ui provides the Bubble Tea interface for the homepage.
//
// # Pages
//
//   - Home: notice, slideshow caption, neighbor banners, recent updates and
//     the web clap box
//   - Archive: every diary entry, rendered with glamour
//   - About: the owner's profile
//   - Dream: one-shot dream analysis
//   - Dashboard: owner-only tabs for settings, profile, slideshow images,
//     clap messages, banners and diagnostics
//
// # Event Flow
//
//  1. Run builds a Model from a state.Store, an ai.Gateway, an AdminGate and
//     a slideshow.Ticker
//  2. Init starts the marquee tick and waits on the ticker's Updates channel
//  3. Key presses go to an open modal first, then to a focused form, then to
//     global and page bindings
//  4. Store writes happen in Update; AI calls run inside commands and report
//     back with a run id so stale replies are dropped
//  5. Validation and storage errors open a notice that any key dismisses
//
// # Key Bindings
//
//   - 1-5: switch page (5 asks for the owner password when locked)
//   - c: clap, m: write a message or dream
//   - tab / ctrl+s / esc: next field, submit, cancel inside forms
//   - h/l: dashboard tabs, j/k: select rows, a: add, d: delete, R: reset
//   - L: login or logout, T: cycle theme, ?: help, q or ctrl+c: quit
package ui
