// Package year2020 holds the puzzle units of the 2020 event.
//
// Each day is a separate type implementing [puzzle.Solver]. The zero value of
// every type is ready to receive input.
package year2020
