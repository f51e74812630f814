package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
	"go.uber.org/zap/zaptest"

	"github.com/berrythewa/c2f/internal/types"
)

func openStorage(t *testing.T, keep int) *BoltStorage {
	t.Helper()
	storage, err := NewBoltStorage(StorageConfig{
		DBPath:    filepath.Join(t.TempDir(), "nested", "history.db"),
		Logger:    zaptest.NewLogger(t),
		KeepItems: keep,
	})
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })
	return storage
}

func textContent(s string, ct types.ContentType) *types.ClipboardContent {
	return &types.ClipboardContent{Type: ct, Data: []byte(s)}
}

func TestBoltStorage(t *testing.T) {
	storage := openStorage(t, 0)

	t.Run("EmptyHistory", func(t *testing.T) {
		records, err := storage.GetHistory(HistoryOptions{})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("SaveAndGetHistory", func(t *testing.T) {
		first := NewRecord("clipboard.json", textContent(`{"a": 1}`, types.TypeJSON), false)
		second := NewRecord("notes.md", textContent("# hi", types.TypeMarkdown), true)
		require.NoError(t, storage.SaveRecord(first))
		require.NoError(t, storage.SaveRecord(second))

		records, err := storage.GetHistory(HistoryOptions{})
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, second.ID, records[0].ID, "newest first")
		assert.Equal(t, "notes.md", records[0].Filename)
		assert.True(t, records[0].Appended)
		assert.Equal(t, types.TypeJSON, records[1].Type)
		assert.Equal(t, 8, records[1].Size)
		assert.Equal(t, first.Hash, records[1].Hash)
		assert.WithinDuration(t, first.Created, records[1].Created, time.Millisecond)
	})

	t.Run("Reverse", func(t *testing.T) {
		records, err := storage.GetHistory(HistoryOptions{Reverse: true})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "clipboard.json", records[0].Filename)
	})

	t.Run("Filters", func(t *testing.T) {
		records, err := storage.GetHistory(HistoryOptions{Type: types.TypeMarkdown})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "notes.md", records[0].Filename)

		records, err = storage.GetHistory(HistoryOptions{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, records, 1)

		records, err = storage.GetHistory(HistoryOptions{Since: time.Now().Add(time.Hour)})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Clear", func(t *testing.T) {
		removed, err := storage.Clear()
		require.NoError(t, err)
		assert.Equal(t, 2, removed)

		records, err := storage.GetHistory(HistoryOptions{})
		require.NoError(t, err)
		assert.Empty(t, records)

		require.NoError(t, storage.SaveRecord(NewRecord("after.txt", textContent("x", types.TypePlainText), false)))
		records, err = storage.GetHistory(HistoryOptions{})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestBoltStorageTrimsToKeepItems(t *testing.T) {
	storage := openStorage(t, 3)

	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("clipboard-%d.txt", i)
		require.NoError(t, storage.SaveRecord(NewRecord(name, textContent("x", types.TypePlainText), false)))
	}

	records, err := storage.GetHistory(HistoryOptions{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "clipboard-4.txt", records[0].Filename)
	assert.Equal(t, "clipboard-2.txt", records[2].Filename)
}

func TestBoltStorageSkipsCorruptRecords(t *testing.T) {
	storage := openStorage(t, 0)
	require.NoError(t, storage.SaveRecord(NewRecord("good.txt", textContent("x", types.TypePlainText), false)))

	err := storage.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(historyBucket)).Put(itob(999), []byte("{not json"))
	})
	require.NoError(t, err)

	records, err := storage.GetHistory(HistoryOptions{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "good.txt", records[0].Filename)
}

func TestBoltStorageSkipsRecordsWithInvalidID(t *testing.T) {
	storage := openStorage(t, 0)
	require.NoError(t, storage.SaveRecord(NewRecord("good.txt", textContent("x", types.TypePlainText), false)))

	bad := NewRecord("bad.txt", textContent("y", types.TypePlainText), false)
	bad.ID = "not-a-uuid"
	require.NoError(t, storage.SaveRecord(bad))

	records, err := storage.GetHistory(HistoryOptions{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "good.txt", records[0].Filename)
}

func TestBoltStoragePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	storage, err := NewBoltStorage(StorageConfig{DBPath: path})
	require.NoError(t, err)
	require.NoError(t, storage.SaveRecord(NewRecord("kept.txt", textContent("x", types.TypePlainText), false)))
	require.NoError(t, storage.Close())

	storage, err = NewBoltStorage(StorageConfig{DBPath: path})
	require.NoError(t, err)
	defer storage.Close()

	records, err := storage.GetHistory(HistoryOptions{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "kept.txt", records[0].Filename)
}
