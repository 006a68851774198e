package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/h2non/filetype"
	pe "github.com/wanglei-coder/pehdr"
)

type Info struct {
	DOSMagic            string
	PEMagic             uint16
	Class               string
	Machine             string
	ImageBase           uint64
	BaseOfCode          uint32
	EntryPoint          uint64
	SectionHeadersStart uint64
	NumberOfSections    int
	SectionHeaderSize   int
	FileType            string
	FileSize            string
	Sections            []*Section
	DataDirectories     []*DataDirectory `json:",omitempty"`
}

type Section struct {
	Index           int
	Name            string
	VirtualSize     uint32
	VirtualAddress  uint64
	RawSize         uint32
	Offset          uint32
	Characteristics uint32
	Flags           string
}

type DataDirectory struct {
	Name           string
	VirtualAddress uint32
	Size           uint32
}

func getSections(img *pe.Image) ([]*Section, error) {
	sections := make([]*Section, 0, len(img.Sections))
	for i, s := range img.Sections {
		name, err := img.SectionName(i)
		if err != nil {
			return nil, err
		}
		sections = append(sections, &Section{
			Index:           i,
			Name:            name,
			VirtualSize:     s.VirtualSize,
			VirtualAddress:  img.SectionVA(i),
			RawSize:         s.SizeOfRawData,
			Offset:          s.PointerToRawData,
			Characteristics: s.Characteristics,
			Flags:           s.Flags(),
		})
	}
	return sections, nil
}

func getDataDirectories(img *pe.Image) []*DataDirectory {
	dds := img.DataDirectories()
	directories := make([]*DataDirectory, 0, len(dds))
	for i, dd := range dds {
		directories = append(directories, &DataDirectory{
			Name:           pe.DirectoryName(i),
			VirtualAddress: dd.VirtualAddress,
			Size:           dd.Size,
		})
	}
	return directories
}

func newInfo(img *pe.Image, withDirectories bool) (*Info, error) {
	dosMagic, err := img.DOSMagic()
	if err != nil {
		return nil, err
	}
	sections, err := getSections(img)
	if err != nil {
		return nil, err
	}

	info := &Info{
		DOSMagic:            dosMagic,
		PEMagic:             img.OptionalMagic(),
		Class:               img.Class().String(),
		Machine:             pe.MachineName(img.FileHeader.Machine),
		ImageBase:           img.ImageBase(),
		BaseOfCode:          img.BaseOfCode(),
		EntryPoint:          img.EntryPoint(),
		SectionHeadersStart: img.SectionTableOffset,
		NumberOfSections:    len(img.Sections),
		SectionHeaderSize:   pe.SectionHeaderSize,
		FileType:            GetFileType(img.Bytes()),
		FileSize:            humanize.IBytes(uint64(len(img.Bytes()))),
		Sections:            sections,
	}
	if withDirectories {
		info.DataDirectories = getDataDirectories(img)
	}
	return info, nil
}

func GetFileType(data []byte) string {
	kind, _ := filetype.Match(data)
	if kind == filetype.Unknown {
		return "Data"
	}
	return kind.MIME.Value
}

func (info *Info) writeJSON(w io.Writer) error {
	data, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// writeText prints the human-readable summary and returns the first write
// error.
func (info *Info) writeText(w io.Writer) error {
	var err error
	p := func(format string, a ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format+"\n", a...)
		}
	}

	p("PE Header:")
	p("DOS Magic: %q", info.DOSMagic)
	p("PE Magic: %#x", info.PEMagic)
	p("Class: %s", info.Class)
	p("Image base: %#x", info.ImageBase)
	p("Base of code: %#x", info.BaseOfCode)
	p("Entry point address: %#x", info.EntryPoint)
	p("Section headers start: %#x", info.SectionHeadersStart)
	p("Section headers length: %d", info.NumberOfSections)
	p("Section header size: %d", info.SectionHeaderSize)
	p("File type: %s", info.FileType)
	p("")
	p("Section Headers:")
	for _, s := range info.Sections {
		// Characteristics are space-padded to 10 columns, prefix included.
		p("%d, %q, %#02x, %#02x, %#02x, %10s, %s",
			s.Index, s.Name, s.VirtualSize, s.VirtualAddress, s.Offset,
			fmt.Sprintf("%#x", s.Characteristics), s.Flags)
	}

	if info.DataDirectories != nil {
		p("")
		p("Data Directories:")
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, dd := range info.DataDirectories {
			fmt.Fprintf(tw, "%d\t%s\t%#x\t%#x\n", i, dd.Name, dd.VirtualAddress, dd.Size)
		}
		return tw.Flush()
	}
	return err
}
