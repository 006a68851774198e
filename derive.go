package pe

import (
	"encoding/binary"
	"unicode/utf8"
)

// Class tells PE32 and PE32+ images apart.
type Class int

const (
	ClassUnknown Class = iota
	ClassPE32
	ClassPE32Plus
)

func (c Class) String() string {
	switch c {
	case ClassPE32:
		return "PE32"
	case ClassPE32Plus:
		return "PE32+"
	}
	return "unknown"
}

func optionalMagic(oh any) uint16 {
	switch oh := oh.(type) {
	case *OptionalHeader32:
		return oh.Magic
	case *OptionalHeader64:
		return oh.Magic
	}
	return 0
}

// OptionalMagic returns the optional header magic.
func (img *Image) OptionalMagic() uint16 {
	return optionalMagic(img.OptionalHeader)
}

// Class classifies the image by its optional header magic.
func (img *Image) Class() Class {
	switch img.OptionalMagic() {
	case ImageNtOptionalHdr32Magic:
		return ClassPE32
	case ImageNtOptionalHdr64Magic:
		return ClassPE32Plus
	}
	return ClassUnknown
}

// ImageBase returns the preferred load address. PE32 values are zero-extended.
func (img *Image) ImageBase() uint64 {
	switch oh := img.OptionalHeader.(type) {
	case *OptionalHeader32:
		return uint64(oh.ImageBase)
	case *OptionalHeader64:
		return oh.ImageBase
	}
	return 0
}

// AddressOfEntryPoint returns the entry point RVA.
func (img *Image) AddressOfEntryPoint() uint32 {
	switch oh := img.OptionalHeader.(type) {
	case *OptionalHeader32:
		return oh.AddressOfEntryPoint
	case *OptionalHeader64:
		return oh.AddressOfEntryPoint
	}
	return 0
}

// BaseOfCode returns the RVA of the start of the code section.
func (img *Image) BaseOfCode() uint32 {
	switch oh := img.OptionalHeader.(type) {
	case *OptionalHeader32:
		return oh.BaseOfCode
	case *OptionalHeader64:
		return oh.BaseOfCode
	}
	return 0
}

// DataDirectories returns the raw data directory array, whatever
// NumberOfRvaAndSizes says.
func (img *Image) DataDirectories() (dds [ImageNumberOfDirectoryEntries]DataDirectory) {
	switch oh := img.OptionalHeader.(type) {
	case *OptionalHeader32:
		dds = oh.DataDirectory
	case *OptionalHeader64:
		dds = oh.DataDirectory
	}
	return dds
}

// EntryPoint returns the absolute virtual address of the entry point. The
// addition wraps at 64 bits.
func (img *Image) EntryPoint() uint64 {
	return img.ImageBase() + uint64(img.AddressOfEntryPoint())
}

// SectionVA returns the absolute virtual address of section i. It panics if
// i is out of range.
func (img *Image) SectionVA(i int) uint64 {
	return img.ImageBase() + uint64(img.Sections[i].VirtualAddress)
}

// SectionName decodes the name of section i. It panics if i is out of range.
func (img *Image) SectionName(i int) (string, error) {
	sh := &img.Sections[i]
	name, ok := sh.name()
	if !ok {
		return "", &BadSectionNameError{Index: i, Name: sh.Name}
	}
	return name, nil
}

// DOSMagic returns e_magic as the two characters it spells on disk.
func (img *Image) DOSMagic() (string, error) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], img.DOSHeader.Magic)
	if !utf8.Valid(b[:]) {
		return "", &BadMagicError{Field: "e_magic", Value: uint32(img.DOSHeader.Magic)}
	}
	return string(b[:]), nil
}
