package pe

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

type NtHeader struct {
	Signature      uint32
	FileHeader     FileHeader
	OptionalHeader any // of type *OptionalHeader32 or *OptionalHeader64
}

type FileHeader struct {
	Machine              uint16
	NumberOfSections     uint16
	TimeDateStamp        uint32
	PointerToSymbolTable uint32
	NumberOfSymbols      uint32
	SizeOfOptionalHeader uint16
	Characteristics      uint16
}

type DataDirectory struct {
	VirtualAddress uint32
	Size           uint32
}

type OptionalHeader32 struct {
	Magic                       uint16
	MajorLinkerVersion          uint8
	MinorLinkerVersion          uint8
	SizeOfCode                  uint32
	SizeOfInitializedData       uint32
	SizeOfUninitializedData     uint32
	AddressOfEntryPoint         uint32
	BaseOfCode                  uint32
	BaseOfData                  uint32
	ImageBase                   uint32
	SectionAlignment            uint32
	FileAlignment               uint32
	MajorOperatingSystemVersion uint16
	MinorOperatingSystemVersion uint16
	MajorImageVersion           uint16
	MinorImageVersion           uint16
	MajorSubsystemVersion       uint16
	MinorSubsystemVersion       uint16
	Win32VersionValue           uint32
	SizeOfImage                 uint32
	SizeOfHeaders               uint32
	CheckSum                    uint32
	Subsystem                   uint16
	DllCharacteristics          uint16
	SizeOfStackReserve          uint32
	SizeOfStackCommit           uint32
	SizeOfHeapReserve           uint32
	SizeOfHeapCommit            uint32
	LoaderFlags                 uint32
	NumberOfRvaAndSizes         uint32
	DataDirectory               [ImageNumberOfDirectoryEntries]DataDirectory
}

type OptionalHeader64 struct {
	Magic                       uint16
	MajorLinkerVersion          uint8
	MinorLinkerVersion          uint8
	SizeOfCode                  uint32
	SizeOfInitializedData       uint32
	SizeOfUninitializedData     uint32
	AddressOfEntryPoint         uint32
	BaseOfCode                  uint32
	ImageBase                   uint64
	SectionAlignment            uint32
	FileAlignment               uint32
	MajorOperatingSystemVersion uint16
	MinorOperatingSystemVersion uint16
	MajorImageVersion           uint16
	MinorImageVersion           uint16
	MajorSubsystemVersion       uint16
	MinorSubsystemVersion       uint16
	Win32VersionValue           uint32
	SizeOfImage                 uint32
	SizeOfHeaders               uint32
	CheckSum                    uint32
	Subsystem                   uint16
	DllCharacteristics          uint16
	SizeOfStackReserve          uint64
	SizeOfStackCommit           uint64
	SizeOfHeapReserve           uint64
	SizeOfHeapCommit            uint64
	LoaderFlags                 uint32
	NumberOfRvaAndSizes         uint32
	DataDirectory               [ImageNumberOfDirectoryEntries]DataDirectory
}

// ntHeaderSize returns the on-disk size of the NT headers for an optional
// header magic. Unknown magics are sized as PE32+ so truncation is still
// reported before the magic itself.
func ntHeaderSize(magic uint16) uint64 {
	if magic == ImageNtOptionalHdr32Magic {
		return NtHeader32Size
	}
	return NtHeader64Size
}

// peekOptionalMagic returns the optional header magic of the NT headers at
// offset, or false if the image ends before it.
func peekOptionalMagic(w Window, offset uint64) (uint16, bool) {
	data, err := w.Slice(offset+optionalMagicOffset, 2)
	if err != nil {
		return 0, false
	}
	return binary.LittleEndian.Uint16(data), true
}

func readNtHeader(w Window, offset uint64) (nh NtHeader, err error) {
	magic, _ := peekOptionalMagic(w, offset)
	size := ntHeaderSize(magic)
	if offset+size > w.Len() {
		return nh, &TruncatedError{Stage: StagePEHeader, Offset: offset, Size: size, Len: w.Len()}
	}

	if err := w.Unpack(&nh.Signature, offset); err != nil {
		return nh, errors.WithMessage(err, "failure to read NT signature")
	}

	if nh.Signature != ImageNTHeaderSignature {
		return nh, &BadMagicError{Field: "signature", Value: nh.Signature}
	}

	if err := w.Unpack(&nh.FileHeader, offset+ntSignatureSize); err != nil {
		return nh, errors.WithMessage(err, "failure to read file header")
	}

	nh.OptionalHeader, err = readOptionalHeader(w, offset+optionalMagicOffset, magic)
	return nh, err
}

func readOptionalHeader(w Window, offset uint64, magic uint16) (any, error) {
	switch magic {
	case ImageNtOptionalHdr32Magic:
		var oh32 OptionalHeader32
		if err := w.Unpack(&oh32, offset); err != nil {
			return nil, errors.Wrap(err, "failure to read PE32 optional header")
		}
		return &oh32, nil
	case ImageNtOptionalHdr64Magic:
		var oh64 OptionalHeader64
		if err := w.Unpack(&oh64, offset); err != nil {
			return nil, errors.Wrap(err, "failure to read PE32+ optional header")
		}
		return &oh64, nil
	default:
		return nil, &BadMagicError{Field: "magic", Value: uint32(magic)}
	}
}
