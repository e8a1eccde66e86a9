package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.ch8", []byte{0x12, 0x34, 0x56, 0x78})

		data, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, data)
	})

	t.Run("unusual extension is accepted", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.bin", []byte{0x00, 0xE0})

		data, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, data, 2)
	})

	t.Run("nil logger", func(t *testing.T) {
		tmpFile := createTempFile(t, "test", []byte{0x00, 0xE0})

		_, err := New(nil).Load(tmpFile)
		assert.NoError(t, err)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New(log.NewTestLogger(t)).Load("/nonexistent/file.ch8")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, "empty.ch8", nil)

		_, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyFile))
	})
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
