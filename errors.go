package pe

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrOutsideBoundary = errors.New("reading data outside boundary")
	ErrTruncated       = errors.New("image is truncated")
	ErrInvalidOffset   = errors.New("invalid header offset")
	ErrBadMagic        = errors.New("bad magic")
	ErrBadSectionName  = errors.New("section name is not valid UTF-8")
)

// Decoding stages reported by TruncatedError.
const (
	StageDOSHeader    = "dos_header"
	StagePEHeader     = "pe_header"
	StageSectionTable = "section_table"
)

// TruncatedError reports that the image ends before the record read at Stage.
type TruncatedError struct {
	Stage  string
	Offset uint64
	Size   uint64
	Len    uint64
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated %s: %d bytes at offset %#x exceed image size %d",
		e.Stage, e.Size, e.Offset, e.Len)
}

func (e *TruncatedError) Is(target error) bool { return target == ErrTruncated }

// InvalidOffsetError reports a header offset field that can't be followed.
type InvalidOffsetError struct {
	Field string
	Value int64
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("invalid %s value %d", e.Field, e.Value)
}

func (e *InvalidOffsetError) Is(target error) bool { return target == ErrInvalidOffset }

// BadMagicError reports a signature field holding an unexpected value.
// Field is one of "e_magic", "signature" or "magic".
type BadMagicError struct {
	Field string
	Value uint32
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("unexpected %s 0x%x", e.Field, e.Value)
}

func (e *BadMagicError) Is(target error) bool { return target == ErrBadMagic }

// BadSectionNameError reports a section whose name does not decode as UTF-8.
type BadSectionNameError struct {
	Index int
	Name  [8]uint8
}

func (e *BadSectionNameError) Error() string {
	return fmt.Sprintf("section %d: name % x is not valid UTF-8", e.Index, e.Name)
}

func (e *BadSectionNameError) Is(target error) bool { return target == ErrBadSectionName }
