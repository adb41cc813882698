package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

func TestReadAllMissingFile(t *testing.T) {
	s := New(t.TempDir())

	records := ReadAll[testRecord](s, "expenses")

	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestWriteAllReadAllRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	in := []testRecord{
		{ID: "1", Label: "groceries", Value: 120},
		{ID: "2", Label: "dining", Value: 80},
		{ID: "3", Label: "groceries", Value: 30},
	}
	require.NoError(t, WriteAll(s, "expenses", in))

	out := ReadAll[testRecord](s, "expenses")
	assert.Equal(t, in, out)
}

func TestReadAllCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "expenses.json"), []byte("{not json"), 0o644))

	records := ReadAll[testRecord](s, "expenses")

	assert.Empty(t, records)
}

func TestWriteAllCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)

	require.NoError(t, WriteAll(s, "users", []testRecord{{ID: "1"}}))

	_, err := os.Stat(filepath.Join(dir, "users.json"))
	assert.NoError(t, err)
}

func TestWriteAllLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	require.NoError(t, WriteAll(s, "budgets", []testRecord{{ID: "1"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "budgets.json", entries[0].Name())
}

func TestUpdateAbortsOnError(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, WriteAll(s, "expenses", []testRecord{{ID: "1", Value: 10}}))

	sentinel := errors.New("boom")
	err := Update(s, "expenses", func(records []testRecord) ([]testRecord, error) {
		return nil, sentinel
	})
	require.ErrorIs(t, err, sentinel)

	out := ReadAll[testRecord](s, "expenses")
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
}

func TestUpdateSerializesConcurrentWriters(t *testing.T) {
	s := New(t.TempDir())

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := Update(s, "expenses", func(records []testRecord) ([]testRecord, error) {
				return append(records, testRecord{ID: "x"}), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	out := ReadAll[testRecord](s, "expenses")
	assert.Len(t, out, writers)
}
