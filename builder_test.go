package pe

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// testImage describes a synthetic PE file: a DOS header at 0, NT headers at
// e_lfanew and the section table right after them.
type testImage struct {
	dos      DOSHeader
	nt       NtHeader
	sections []SectionHeader
	// size pads or cuts the encoded image; zero keeps its natural length.
	size int
}

func sectionName(s string) (name [8]uint8) {
	copy(name[:], s)
	return name
}

// newTestImage64 returns scenario 1: a PE32+ image with no sections.
func newTestImage64() *testImage {
	return &testImage{
		dos: DOSHeader{Magic: ImageDOSSignature, AddressOfNewEXEHeader: DOSHeaderSize},
		nt: NtHeader{
			Signature: ImageNTHeaderSignature,
			FileHeader: FileHeader{
				Machine:              ImageFileMachineAmd64,
				SizeOfOptionalHeader: OptionalHeader64Size,
			},
			OptionalHeader: &OptionalHeader64{
				Magic:               ImageNtOptionalHdr64Magic,
				AddressOfEntryPoint: 0x1000,
				BaseOfCode:          0x1000,
				ImageBase:           0x140000000,
				SectionAlignment:    0x1000,
				FileAlignment:       0x200,
				NumberOfRvaAndSizes: ImageNumberOfDirectoryEntries,
			},
		},
	}
}

// newTestImage64WithSections returns scenario 2: two sections, .text and .data.
func newTestImage64WithSections() *testImage {
	ti := newTestImage64()
	ti.sections = []SectionHeader{
		{
			Name:             sectionName(".text"),
			VirtualSize:      0x1000,
			VirtualAddress:   0x1000,
			SizeOfRawData:    0x200,
			PointerToRawData: 0x400,
			Characteristics:  0x60000020,
		},
		{
			Name:             sectionName(".data"),
			VirtualSize:      0x800,
			VirtualAddress:   0x2000,
			SizeOfRawData:    0x200,
			PointerToRawData: 0x600,
			Characteristics:  0xC0000040,
		},
	}
	ti.nt.FileHeader.NumberOfSections = 2
	return ti
}

func (ti *testImage) bytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	write := func(v any) {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}

	write(&ti.dos)
	if pad := int(ti.dos.AddressOfNewEXEHeader) - buf.Len(); pad > 0 {
		buf.Write(make([]byte, pad))
	}
	write(ti.nt.Signature)
	write(&ti.nt.FileHeader)
	if ti.nt.OptionalHeader != nil {
		write(ti.nt.OptionalHeader)
	}
	if len(ti.sections) > 0 {
		write(ti.sections)
	}

	data := buf.Bytes()
	switch {
	case ti.size == 0:
	case ti.size < len(data):
		data = data[:ti.size]
	default:
		data = append(data, make([]byte, ti.size-len(data))...)
	}
	return data
}
