package shikaku

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writeInstance(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunBatchIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "a.txt", "4 0 0 4\n0 0 0 0\n0 0 0 0\n0 8 0 0\n")
	writeInstance(t, dir, "b.txt", "4 0\n0 0\n2 0\n")
	store := filepath.Join(t.TempDir(), "results.json")

	solves := 0
	base := ExactMethod(GophersatBackend{}, 0)
	counting := Method{
		Name: base.Name,
		Solve: func(g Grid) (Result, error) {
			solves++
			return base.Solve(g)
		},
	}

	ran, err := RunBatch(dir, store, counting)
	require.NoError(t, err)
	assert.Equal(t, 2, ran)
	assert.Equal(t, 2, solves)
	first, err := os.ReadFile(store)
	require.NoError(t, err)

	// Second run: every (method, instance) pair exists already, nothing is
	// re-solved and the persisted store is byte-identical.
	ran, err = RunBatch(dir, store, counting)
	require.NoError(t, err)
	assert.Equal(t, 0, ran)
	assert.Equal(t, 2, solves)
	second, err := os.ReadFile(store)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	rec := gjson.GetBytes(first, storeKey("gophersat", "a.txt"))
	require.True(t, rec.Exists())
	assert.True(t, rec.Get("solved").Bool())
}

func TestRunBatchDifferentMethodsDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "a.txt", "2 0\n2 0\n")
	store := filepath.Join(t.TempDir(), "results.json")

	ran, err := RunBatch(dir, store, ExactMethod(GophersatBackend{}, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, ran)

	// A different method identifier is a different key: the instance is
	// solved again under its own entry.
	ran, err = RunBatch(dir, store, ExactMethod(GiniBackend{}, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, ran)

	raw, err := os.ReadFile(store)
	require.NoError(t, err)
	assert.True(t, gjson.GetBytes(raw, storeKey("gophersat", "a.txt")).Exists())
	assert.True(t, gjson.GetBytes(raw, storeKey("gini", "a.txt")).Exists())
}

func TestRunBatchRecordsParseErrors(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "bad.txt", "1 2\n3\n")
	store := filepath.Join(t.TempDir(), "results.json")

	ran, err := RunBatch(dir, store, ExactMethod(GophersatBackend{}, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, ran)

	raw, err := os.ReadFile(store)
	require.NoError(t, err)
	rec := gjson.GetBytes(raw, storeKey("gophersat", "bad.txt"))
	require.True(t, rec.Exists())
	assert.False(t, rec.Get("solved").Bool())
	assert.NotEmpty(t, rec.Get("error").String())
}
