package pe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "image.exe")
	require.NoError(t, os.WriteFile(name, data, 0o600))
	return name
}

func TestOpen(t *testing.T) {
	data := newTestImage64WithSections().bytes(t)
	name := writeTemp(t, data)

	f, err := Open(name)
	require.NoError(t, err)
	defer f.Close()

	want, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, name, f.Name)
	assert.Equal(t, len(data), f.Size())
	assert.Equal(t, want.DOSHeader, f.DOSHeader)
	assert.Equal(t, want.NtHeader, f.NtHeader)
	assert.Equal(t, want.Sections, f.Sections)
	assert.Equal(t, data, f.Bytes())
	assert.Equal(t, uint64(0x140001000), f.EntryPoint())
}

func TestOpen_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		target error
	}{
		{name: "empty file", data: nil, target: ErrTruncated},
		{name: "short file", data: make([]byte, 10), target: ErrTruncated},
		{name: "not a PE file", data: make([]byte, 512), target: ErrBadMagic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Open(writeTemp(t, tt.data))
			assert.Nil(t, f)
			assert.True(t, errors.Is(err, tt.target), "Open() error = %v, want %v", err, tt.target)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "missing.exe"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestFile_Close(t *testing.T) {
	f, err := Open(writeTemp(t, newTestImage64().bytes(t)))
	require.NoError(t, err)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
	assert.Nil(t, f.Image)
}
