package advisor

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Veraticus/wastewise/internal/common"
)

// MaxSampleSize bounds how much of an upload is read.
const MaxSampleSize = 10 << 20

// SampleFromFile reads an image from disk as a sample.
func SampleFromFile(path string) (Sample, error) {
	f, err := os.Open(path) //nolint:gosec // user-selected upload
	if err != nil {
		return Sample{}, fmt.Errorf("failed to open sample: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return Sample{}, fmt.Errorf("failed to stat sample: %w", err)
	}
	if info.IsDir() {
		return Sample{}, fmt.Errorf("%w: %s is a directory", common.ErrInvalidInput, path)
	}
	if info.Size() > MaxSampleSize {
		return Sample{}, fmt.Errorf("%w: %s is larger than %d bytes", common.ErrInvalidInput, path, MaxSampleSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxSampleSize))
	if err != nil {
		return Sample{}, fmt.Errorf("failed to read sample: %w", err)
	}

	return Sample{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
		Size:        info.Size(),
	}, nil
}
