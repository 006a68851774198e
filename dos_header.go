package pe

import (
	"github.com/pkg/errors"
)

type DOSHeader struct {
	Magic                    uint16
	BytesOnLastPageOfFile    uint16
	PagesInFile              uint16
	Relocations              uint16
	SizeOfHeader             uint16
	MinExtraParagraphsNeeded uint16
	MaxExtraParagraphsNeeded uint16
	InitialSS                uint16
	InitialSP                uint16
	Checksum                 uint16
	InitialIP                uint16
	InitialCS                uint16
	AddressOfRelocationTable uint16
	OverlayNumber            uint16
	ReservedWords1           [4]uint16
	OEMIdentifier            uint16
	OEMInformation           uint16
	ReservedWords2           [10]uint16
	AddressOfNewEXEHeader    int32
}

func readDOSHeader(w Window) (dh DOSHeader, err error) {
	if w.Len() < DOSHeaderSize {
		return dh, &TruncatedError{Stage: StageDOSHeader, Size: DOSHeaderSize, Len: w.Len()}
	}

	if err := w.Unpack(&dh, 0); err != nil {
		return dh, errors.WithMessage(err, "failure to read DOS header")
	}

	if dh.Magic != ImageDOSSignature && dh.Magic != ImageDOSZMSignature {
		return dh, &BadMagicError{Field: "e_magic", Value: uint32(dh.Magic)}
	}
	return dh, nil
}

// ntHeaderOffset widens e_lfanew to a file offset. Any non-negative int32
// fits the offset type, so only negative values are rejected.
func (dh *DOSHeader) ntHeaderOffset() (uint64, error) {
	if dh.AddressOfNewEXEHeader < 0 {
		return 0, &InvalidOffsetError{Field: "e_lfanew", Value: int64(dh.AddressOfNewEXEHeader)}
	}
	return uint64(dh.AddressOfNewEXEHeader), nil
}
