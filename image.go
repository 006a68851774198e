package pe

// Image holds the headers decoded from an in-memory PE file. It keeps a
// reference to the buffer it was parsed from, which must outlive it and must
// not be modified.
type Image struct {
	DOSHeader
	NtHeader
	Sections []SectionHeader

	// NtHeaderOffset is the file offset of the PE signature (e_lfanew).
	NtHeaderOffset uint64
	// SectionTableOffset is the file offset of the first section header.
	SectionTableOffset uint64

	data Window
}

// Parse decodes the DOS header, the NT headers and the section table of the
// PE file held in data. Either every header is decoded or an error is
// returned.
func Parse(data []byte) (*Image, error) {
	w := Window(data)

	dh, err := readDOSHeader(w)
	if err != nil {
		return nil, err
	}

	ntOffset, err := dh.ntHeaderOffset()
	if err != nil {
		return nil, err
	}

	nh, err := readNtHeader(w, ntOffset)
	if err != nil {
		return nil, err
	}

	secOffset := ntOffset + ntHeaderSize(optionalMagic(nh.OptionalHeader))
	sections, err := readSections(w, secOffset, nh.FileHeader.NumberOfSections)
	if err != nil {
		return nil, err
	}

	return &Image{
		DOSHeader:          dh,
		NtHeader:           nh,
		Sections:           sections,
		NtHeaderOffset:     ntOffset,
		SectionTableOffset: secOffset,
		data:               w,
	}, nil
}

// Bytes returns the buffer the image was parsed from.
func (img *Image) Bytes() []byte {
	return img.data
}

// Section returns the first section named name, or nil.
func (img *Image) Section(name string) *SectionHeader {
	for i := range img.Sections {
		if n, ok := img.Sections[i].name(); ok && n == name {
			return &img.Sections[i]
		}
	}
	return nil
}
