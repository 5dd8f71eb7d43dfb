// Package year2021 holds the puzzle units of the 2021 event.
//
// Each day is a separate type implementing [puzzle.Solver]; the zero value is
// ready to receive input. SetInput decodes into an immutable model, and each
// part works on its own copy of any state it needs to mutate, so parts may be
// requested in any order.
package year2021
