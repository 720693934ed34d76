package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/munconf/internal/errors"
)

// MaxFileSize is the largest file ReadLimited accepts (1MB).
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.WithHint(
	errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize),
	"Split the file or trim unused entries")

// ReadLimited reads path, failing with ErrFileTooLarge past MaxFileSize.
// A missing file is reported as errors.ErrNotFound.
func ReadLimited(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "opening %s", path)
		}
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}
