package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/adventofcode/pkg/errors"
)

// InputPath returns the conventional location of a puzzle input below dir:
// dir/year2021/day6.txt.
func InputPath(dir string, year, day int) string {
	return filepath.Join(dir, fmt.Sprintf("year%d", year), fmt.Sprintf("day%d.txt", day))
}

// ReadInput reads a puzzle input file. "-" reads stdin.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "input file %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}
