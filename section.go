package pe

import (
	"bytes"
	"unicode/utf8"
)

type SectionHeader struct {
	Name                 [8]uint8
	VirtualSize          uint32
	VirtualAddress       uint32
	SizeOfRawData        uint32
	PointerToRawData     uint32
	PointerToRelocations uint32
	PointerToLineNumbers uint32
	NumberOfRelocations  uint16
	NumberOfLineNumbers  uint16
	Characteristics      uint32
}

// cString returns the bytes of b up to the first 0, or all of b.
func cString(b []byte) []byte {
	i := bytes.IndexByte(b, 0)
	if i == -1 {
		i = len(b)
	}
	return b[:i]
}

// name decodes the NUL-padded section name. A name filling all 8 bytes has
// no terminator.
func (sh *SectionHeader) name() (string, bool) {
	b := cString(sh.Name[:])
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// Flags returns the r, x and w memory permissions set in Characteristics.
func (sh *SectionHeader) Flags() (flags string) {
	if (ImageScnMemRead & sh.Characteristics) == ImageScnMemRead {
		flags += "r"
	}
	if (ImageScnMemExecute & sh.Characteristics) == ImageScnMemExecute {
		flags += "x"
	}
	if (ImageScnMemWrite & sh.Characteristics) == ImageScnMemWrite {
		flags += "w"
	}
	return flags
}

func readSections(w Window, offset uint64, n uint16) ([]SectionHeader, error) {
	size := uint64(n) * SectionHeaderSize
	if offset+size > w.Len() {
		return nil, &TruncatedError{Stage: StageSectionTable, Offset: offset, Size: size, Len: w.Len()}
	}
	return UnpackSlice[SectionHeader](w, offset, uint64(n))
}
