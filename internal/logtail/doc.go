// Package logtail reads the tail of the pigcat log file for the admin
// dashboard.
//
// Read keeps the last N lines in a ring buffer, so memory stays bounded by N
// regardless of file size. Parse turns a zerolog JSON record into an Entry;
// lines that are not JSON come back with only Message set. A missing log file
// is not an error.
package logtail
