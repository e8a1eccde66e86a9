// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// ErrEmptyFile is returned for ROM files without content.
var ErrEmptyFile = errors.New("ROM file is empty")

// Extensions lists the file extensions that CHIP-8 ROMs are usually distributed with.
var Extensions = []string{".ch8", ".c8", ".rom"}

// Loader handles loading ROM files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the ROM file at the given path. The size limit of the machine
// memory is enforced when the program is loaded into a machine.
func (l *Loader) Load(path string) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(Extensions, ext) && l.logger != nil {
		l.logger.Debug("Unusual ROM file extension",
			log.String("file", path),
			log.String("extension", ext))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("loading file %s: %w", path, ErrEmptyFile)
	}

	return data, nil
}
