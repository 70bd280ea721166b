package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which home panels stack.
	LayoutCompactWidth = 100

	// LayoutMinWidth keeps text wrapping sane on tiny terminals.
	LayoutMinWidth = 40

	// chromeRows is the header, nav and command bar height.
	chromeRows = 5
)

// Modal sizes.
const (
	HelpModalWidth   = 44
	NoticeModalWidth = 48
)

// Display limits.
const (
	// RecentUpdates is the number of entries listed under NEW UPDATES.
	RecentUpdates = 5

	// DiagnosticLogLines is how many log records the dashboard loads.
	DiagnosticLogLines = 200
)

// Timing constants.
const (
	// MarqueeInterval is the scroll step of the marquee line.
	MarqueeInterval = 150 * time.Millisecond
)
