package pe

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// File is an Image parsed from a read-only memory mapping of a file on disk.
type File struct {
	*Image
	Name string

	data mmap.MMap
}

// Open maps the named file and parses its headers. The mapping stays alive
// until Close.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	// mmap rejects zero-length mappings; Parse reports the empty image.
	if stat.Size() == 0 {
		_, err := Parse(nil)
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failure to map %s", name)
	}

	img, err := Parse(data)
	if err != nil {
		_ = data.Unmap()
		return nil, err
	}
	return &File{Image: img, Name: name, data: data}, nil
}

// Close unmaps the file. The embedded Image is unusable afterwards.
func (f *File) Close() error {
	if f.data == nil {
		return nil
	}
	err := f.data.Unmap()
	f.data = nil
	f.Image = nil
	return err
}

// Size returns the length of the mapping.
func (f *File) Size() int {
	return len(f.data)
}
