// Package pkg holds the libraries behind the aoc command.
//
// # Layout
//
//  1. [puzzle] - the Solver contract, input helpers and the per-year units
//  2. [puzzle/catalog] - the table of units by year and day
//  3. [runner] - solving with answer caching and concurrent batches
//  4. [cache] - file, redis and no-op answer stores
//  5. [graph] - graph models with DOT, SVG and JSON export
//  6. [geom] - 2D/3D points and the 24 cube rotations
//  7. [errors] - coded errors shared by every layer
//  8. [observability] - solve and cache event hooks
//
// # Data flow
//
//	input file
//	     ↓
//	[runner] (cache lookup by input hash)
//	     ↓
//	[puzzle/catalog] → Solver.SetInput → PartOne / PartTwo
//	     ↓
//	answers (cached for the next run)
//
// [puzzle]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/puzzle
// [puzzle/catalog]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/puzzle/catalog
// [runner]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/cache
// [graph]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/graph
// [geom]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/geom
// [errors]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/adventofcode/pkg/observability
package pkg
