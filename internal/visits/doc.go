// Package visits computes the daily visit counter shown on the home page.
//
// The counter is recomputed once per process start from two records in the
// kv store: the last visit date and today's count. Every start on the same
// calendar day increments the count, so repeated launches inflate it. That
// matches the long-standing behaviour of the site and is kept on purpose.
package visits
