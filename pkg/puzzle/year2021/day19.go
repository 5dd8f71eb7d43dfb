package year2021

import (
	"fmt"
	"strings"

	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/geom"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// minOverlap is the number of shared beacons that proves two scanners overlap.
const minOverlap = 12

// minSharedDistances is the number of pairwise distances minOverlap shared
// beacons have in common: 12 choose 2.
const minSharedDistances = minOverlap * (minOverlap - 1) / 2

type beaconScanner struct {
	beacons   []geom.Point3
	distances map[int]int // squared distance -> number of beacon pairs
}

func newBeaconScanner(beacons []geom.Point3) beaconScanner {
	s := beaconScanner{beacons: beacons, distances: make(map[int]int)}
	for i := range beacons {
		for j := i + 1; j < len(beacons); j++ {
			s.distances[beacons[i].SquaredDistance(beacons[j])]++
		}
	}
	return s
}

// sharedDistances is a rotation-independent overlap estimate.
func (s beaconScanner) sharedDistances(o beaconScanner) int {
	n := 0
	for d, c := range s.distances {
		n += min(c, o.distances[d])
	}
	return n
}

// Day19 reassembles a beacon map from scanners with unknown orientation.
type Day19 struct {
	scanners []beaconScanner
}

func (d *Day19) Info() puzzle.Info {
	return puzzle.Info{Name: "Beacon Scanner", Year: 2021, Day: 19}
}

func (d *Day19) SetInput(lines []string) error {
	d.scanners = nil
	blocks := puzzle.Blocks(lines)
	if len(blocks) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no scanners in input")
	}
	scanners := make([]beaconScanner, 0, len(blocks))
	for i, block := range blocks {
		var id int
		if _, err := fmt.Sscanf(strings.TrimSpace(block[0]), "--- scanner %d ---", &id); err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "scanner %d: %q is not a scanner header", i, block[0])
		}
		beacons := make([]geom.Point3, 0, len(block)-1)
		for _, l := range block[1:] {
			var p geom.Point3
			if _, err := fmt.Sscanf(strings.TrimSpace(l), "%d,%d,%d", &p.X, &p.Y, &p.Z); err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "scanner %d: %q is not x,y,z", id, l)
			}
			beacons = append(beacons, p)
		}
		scanners = append(scanners, newBeaconScanner(beacons))
	}
	d.scanners = scanners
	return nil
}

// PartOne counts the distinct beacons once all scanners are aligned.
func (d *Day19) PartOne() (int64, error) {
	if d.scanners == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	world, _, err := d.align()
	if err != nil {
		return 0, err
	}
	beacons := make(map[geom.Point3]bool)
	for _, bs := range world {
		for _, b := range bs {
			beacons[b] = true
		}
	}
	return int64(len(beacons)), nil
}

// PartTwo returns the largest Manhattan distance between any two scanners.
func (d *Day19) PartTwo() (int64, error) {
	if d.scanners == nil {
		return 0, errors.NotReady(d.Info().String())
	}
	_, positions, err := d.align()
	if err != nil {
		return 0, err
	}
	var best int
	for i := range positions {
		for j := i + 1; j < len(positions); j++ {
			best = max(best, positions[i].Manhattan(positions[j]))
		}
	}
	return int64(best), nil
}

// align places every scanner in scanner 0's frame. It returns each scanner's
// beacons in that frame and each scanner's position. Newly placed scanners
// are used as references for the remaining ones; candidates are screened by
// their shared pairwise distances before the 24 rotations are tried.
func (d *Day19) align() ([][]geom.Point3, []geom.Point3, error) {
	n := len(d.scanners)
	world := make([][]geom.Point3, n)
	positions := make([]geom.Point3, n)
	placed := make([]bool, n)

	world[0] = d.scanners[0].beacons
	placed[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]
		for i := range d.scanners {
			if placed[i] || d.scanners[ref].sharedDistances(d.scanners[i]) < minSharedDistances {
				continue
			}
			rot, offset, ok := matchScanner(world[ref], d.scanners[i].beacons)
			if !ok {
				continue
			}
			aligned := make([]geom.Point3, len(d.scanners[i].beacons))
			for j, b := range d.scanners[i].beacons {
				aligned[j] = rot.Apply(b).Add(offset)
			}
			world[i], positions[i], placed[i] = aligned, offset, true
			queue = append(queue, i)
		}
	}

	for i, ok := range placed {
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeNoSolution, "scanner %d shares fewer than %d beacons with the others", i, minOverlap)
		}
	}
	return world, positions, nil
}

// matchScanner finds the rotation and offset that map at least minOverlap of
// local onto reference. Every reference/local pairing votes for the offset it
// implies; a true match collects minOverlap votes for one offset.
func matchScanner(reference, local []geom.Point3) (geom.Rotation, geom.Point3, bool) {
	for _, rot := range geom.Rotations {
		votes := make(map[geom.Point3]int)
		for _, l := range local {
			rl := rot.Apply(l)
			for _, r := range reference {
				off := r.Sub(rl)
				votes[off]++
				if votes[off] >= minOverlap {
					return rot, off, true
				}
			}
		}
	}
	return geom.Rotation{}, geom.Point3{}, false
}
