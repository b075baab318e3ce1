package pager

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemPager(t *testing.T) (*Pager, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	p, err := Open(fs, "test.db")
	require.NoError(t, err)
	return p, fs
}

func TestOpenEmptyFileHasZeroPages(t *testing.T) {
	p, _ := newMemPager(t)
	assert.EqualValues(t, 0, p.NumPages())
}

func TestGetPageLazilyAllocatesPastEOF(t *testing.T) {
	p, _ := newMemPager(t)

	pg, err := p.GetPage(0)
	require.NoError(t, err)
	assert.NotNil(t, pg)
	assert.EqualValues(t, 1, p.NumPages())

	_, err = p.GetPage(3)
	require.NoError(t, err)
	assert.EqualValues(t, 4, p.NumPages())
}

func TestGetPageOutOfBounds(t *testing.T) {
	p, _ := newMemPager(t)
	_, err := p.GetPage(MaxPages)
	assert.Error(t, err)
}

func TestFlushThenReopenPersists(t *testing.T) {
	p, fs := newMemPager(t)

	pg, err := p.GetPage(0)
	require.NoError(t, err)
	pg.Data[0] = 0xAB
	require.NoError(t, p.Close())

	p2, err := Open(fs, "test.db")
	require.NoError(t, err)
	assert.EqualValues(t, 1, p2.NumPages())

	pg2, err := p2.GetPage(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), pg2.Data[0])
}

func TestCorruptFileLengthIsRejected(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.db", make([]byte, PageSize+1), 0600))

	_, err := Open(fs, "bad.db")
	assert.EqualError(t, err, "Db file is not a whole number of pages. Corrupt file.")
}
