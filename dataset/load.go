package dataset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Load memory-maps path read-only and parses it with Parse.
// An empty file yields ErrEmpty without mapping.
func Load(path string, opts ...Option) (ds *Dataset, err error) {
	var file *os.File
	if file, err = os.Open(path); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("dataset: %s: %w", path, ErrEmpty)
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("dataset: mmap %s: %w", path, err)
	}
	defer func() {
		if uerr := data.Unmap(); uerr != nil && err == nil {
			err = fmt.Errorf("dataset: unmap %s: %w", path, uerr)
		}
	}()

	if ds, err = Parse(bytes.NewReader(data), opts...); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}
