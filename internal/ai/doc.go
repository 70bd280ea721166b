// Package ai produces the generated texts attached to diary entries and
// dream readings.
//
// A Generator turns a Request into text. Generators are built from config:
// "openai" and "anthropic" go through go.jetify.com/ai on top of the vendor
// SDKs, "openai-compatible" posts to any /v1/chat/completions endpoint
// (Gemini, local servers), and "none" always fails.
//
// Gateway wraps a Generator with the three calls the site uses. None of them
// return an error: a failed call yields a fixed fallback string and an empty
// reply yields a different one, so callers always get something to display.
package ai
