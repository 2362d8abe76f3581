package psxmc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDB(t *testing.T) {
	db, err := OpenSaveDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	m := newTestCard()
	require.NoError(t, db.AddCard("/cards/a.mcr", m))

	entries, err := db.FindByTitle("wild")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "/cards/a.mcr", e.CardPath)
	assert.Equal(t, 0, e.Slot)
	assert.Equal(t, "WILD ARMS", e.Title)
	assert.Equal(t, "WILDARMS", e.ProductID)
	assert.Equal(t, "America", e.Region)
	assert.Equal(t, uint32(BlockSize), e.Filesize)

	// Unchanged card indexes once
	require.NoError(t, db.AddCard("/cards/a.mcr", m))
	entries, err = db.FindByTitle("WILD")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// Changed card replaces its saves
	m.Data[0].TitleFrame.Title = encodeTitle("SUIKODEN")
	require.NoError(t, db.AddCard("/cards/a.mcr", m))

	entries, err = db.FindByTitle("wild")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = db.FindByTitle("suiko")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveDBFreeSlotsSkipped(t *testing.T) {
	db, err := OpenSaveDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	m := newTestCard()
	m.Info.DirFrames[0].State = uint32(Free)
	require.NoError(t, db.AddCard("/cards/empty.mcr", m))

	entries, err := db.FindByTitle("")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
