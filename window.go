package pe

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"github.com/pkg/errors"
)

// Window is a bounded, read-only view over the bytes of an image.
//
// Records are decoded field by field in little-endian order, so neither the
// host byte order nor the alignment of the source offset matters.
type Window []byte

// Len returns the size of the window in bytes.
func (w Window) Len() uint64 {
	return uint64(len(w))
}

// Slice returns length bytes starting at offset. The result aliases w and its
// capacity is clipped to length.
func (w Window) Slice(offset, length uint64) ([]byte, error) {
	end, carry := bits.Add64(offset, length, 0)
	if carry != 0 || end > w.Len() {
		return nil, errors.Wrapf(ErrOutsideBoundary, "%d bytes at offset %#x", length, offset)
	}
	return w[offset:end:end], nil
}

// Unpack decodes the fixed-size record v points to from offset.
func (w Window) Unpack(v any, offset uint64) error {
	size := binary.Size(v)
	if size < 0 {
		return errors.Errorf("%T is not a fixed-size record", v)
	}
	data, err := w.Slice(offset, uint64(size))
	if err != nil {
		return err
	}
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, v)
}

// UnpackSlice decodes count consecutive records of type T from offset.
func UnpackSlice[T any](w Window, offset, count uint64) ([]T, error) {
	var zero T
	size := binary.Size(zero)
	if size < 0 {
		return nil, errors.Errorf("%T is not a fixed-size record", zero)
	}
	hi, total := bits.Mul64(uint64(size), count)
	if hi != 0 {
		return nil, errors.Wrapf(ErrOutsideBoundary, "%d records of %d bytes", count, size)
	}
	data, err := w.Slice(offset, total)
	if err != nil {
		return nil, err
	}
	records := make([]T, count)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, records); err != nil {
		return nil, err
	}
	return records, nil
}
