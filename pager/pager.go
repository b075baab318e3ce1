// Package pager owns the single database file and pages it in and out of
// a bounded in-memory cache.
package pager

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

const (
	// PageSize is the fixed width of every page, in bytes.
	PageSize = 4096
	// MaxPages bounds the pager's resident page array.
	MaxPages = 100

	fileOpenFlags = os.O_RDWR | os.O_CREATE
)

// Page is one 4096-byte page buffer.
type Page struct {
	Data [PageSize]byte
}

// Pager maps page numbers to in-memory buffers and to file offsets of a
// single underlying file. It is opened against an afero.Fs so production
// code points it at the real filesystem and tests point it at an
// in-memory one without touching any pager logic.
type Pager struct {
	file     afero.File
	pages    [MaxPages]*Page
	numPages uint32
}

// Open opens (or creates) path on fs and derives the page count from the
// file length. The file length must be a whole multiple of PageSize.
func Open(fs afero.Fs, path string) (*Pager, error) {
	f, err := fs.OpenFile(path, fileOpenFlags, 0600)
	if err != nil {
		return nil, fmt.Errorf("pager: open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("pager: stat %s: %w", path, err)
	}
	size := info.Size()
	if size%PageSize != 0 {
		f.Close()
		return nil, fmt.Errorf("Db file is not a whole number of pages. Corrupt file.")
	}
	return &Pager{
		file:     f,
		numPages: uint32(size / PageSize),
	}, nil
}

// NumPages reports how many pages the file currently spans.
func (p *Pager) NumPages() uint32 {
	return p.numPages
}

// GetPage returns the resident buffer for pageNum, loading it from disk
// (or allocating a fresh zeroed one past the current end of file) as
// needed.
func (p *Pager) GetPage(pageNum uint32) (*Page, error) {
	if pageNum >= MaxPages {
		return nil, fmt.Errorf("pager: page %d out of bounds (max %d)", pageNum, MaxPages)
	}

	if p.pages[pageNum] == nil {
		pg := &Page{}
		if pageNum < p.numPages {
			if err := p.readPage(pageNum, pg); err != nil {
				return nil, err
			}
		}
		p.pages[pageNum] = pg
	}

	if pageNum >= p.numPages {
		p.numPages = pageNum + 1
	}

	return p.pages[pageNum], nil
}

func (p *Pager) readPage(pageNum uint32, pg *Page) error {
	off := int64(pageNum) * PageSize
	if _, err := p.file.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("pager: seek page %d: %w", pageNum, err)
	}
	if _, err := io.ReadFull(p.file, pg.Data[:]); err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("pager: read page %d: %w", pageNum, err)
	}
	return nil
}

// Flush writes a resident page's full contents back to the file.
func (p *Pager) Flush(pageNum uint32) error {
	pg := p.pages[pageNum]
	if pg == nil {
		return nil
	}
	off := int64(pageNum) * PageSize
	if _, err := p.file.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("pager: seek page %d: %w", pageNum, err)
	}
	if _, err := p.file.Write(pg.Data[:]); err != nil {
		return fmt.Errorf("pager: write page %d: %w", pageNum, err)
	}
	return nil
}

// Close flushes every resident page with index < NumPages, releases the
// buffers, and closes the file handle.
func (p *Pager) Close() error {
	for i := uint32(0); i < p.numPages; i++ {
		if p.pages[i] == nil {
			continue
		}
		if err := p.Flush(i); err != nil {
			return err
		}
	}
	for i := range p.pages {
		p.pages[i] = nil
	}
	return p.file.Close()
}
