// Package runner solves puzzle units with answer caching.
//
// A [Runner] looks a unit up in the catalog, decodes the input once, and
// answers the requested parts. Each answer is cached under a key built from
// the year, day, part and a hash of the input bytes, so a second run over
// the same file returns immediately. [Runner.RunAll] solves many units
// concurrently; each unit still runs on a single goroutine.
//
// Events are reported through pkg/observability.
package runner
