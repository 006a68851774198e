package pe

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_Slice(t *testing.T) {
	w := Window{0, 1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name           string
		offset, length uint64
		want           []byte
		wantErr        bool
	}{
		{name: "whole window", offset: 0, length: 8, want: []byte{0, 1, 2, 3, 4, 5, 6, 7}},
		{name: "tail", offset: 6, length: 2, want: []byte{6, 7}},
		{name: "empty at end", offset: 8, length: 0, want: []byte{}},
		{name: "one past end", offset: 7, length: 2, wantErr: true},
		{name: "offset past end", offset: 9, length: 0, wantErr: true},
		{name: "overflow", offset: math.MaxUint64, length: 2, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := w.Slice(tt.offset, tt.length)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrOutsideBoundary), "Window.Slice() error = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(got), cap(got))
		})
	}
}

func TestWindow_SliceAliases(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	got, err := Window(data).Slice(1, 2)
	require.NoError(t, err)
	assert.Same(t, &data[1], &got[0])
}

func TestWindow_Unpack(t *testing.T) {
	w := Window{0xff, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12}

	var v16 uint16
	require.NoError(t, w.Unpack(&v16, 1))
	assert.Equal(t, uint16(0x1234), v16)

	// Odd offsets decode like any other.
	var v32 uint32
	require.NoError(t, w.Unpack(&v32, 3))
	assert.Equal(t, uint32(0x12345678), v32)

	err := w.Unpack(&v32, 4)
	assert.True(t, errors.Is(err, ErrOutsideBoundary))

	var named struct{ Name string }
	assert.Error(t, w.Unpack(&named, 0))
}

func TestUnpackSlice(t *testing.T) {
	w := Window{0, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00}

	got, err := UnpackSlice[uint16](w, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2, 3}, got)

	got, err = UnpackSlice[uint16](w, 7, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = UnpackSlice[uint16](w, 1, 4)
	assert.True(t, errors.Is(err, ErrOutsideBoundary))

	_, err = UnpackSlice[SectionHeader](w, 0, math.MaxUint64)
	assert.True(t, errors.Is(err, ErrOutsideBoundary))
}

func TestRecordSizes(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
	}{
		{"DOSHeader", DOSHeader{}, DOSHeaderSize},
		{"FileHeader", FileHeader{}, FileHeaderSize},
		{"DataDirectory", DataDirectory{}, DataDirectorySize},
		{"OptionalHeader32", OptionalHeader32{}, OptionalHeader32Size},
		{"OptionalHeader64", OptionalHeader64{}, OptionalHeader64Size},
		{"SectionHeader", SectionHeader{}, SectionHeaderSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, binary.Size(tt.v))
		})
	}
}
