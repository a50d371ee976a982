// Tests for JSONL persistence in the SQLite backend.
package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

func TestJSONLFileInitializedEmpty(t *testing.T) {
	_, dir := setupBackend(t)

	info, err := os.Stat(filepath.Join(dir, teachersJSONL))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestTeacherPersistedToJSONL(t *testing.T) {
	b, dir := setupBackend(t)
	table, err := b.Teachers()
	require.NoError(t, err)

	tc := newTeacher(t, "Ada", "Lovelace", "Math")
	require.NoError(t, table.Insert(tc))

	records, err := readTeachersJSONL(dir)
	require.NoError(t, err)
	require.Len(t, records, 1)

	var rec teacherJSON
	require.NoError(t, json.Unmarshal(records[0], &rec))
	assert.Equal(t, tc.ID, rec.TeacherID)
	assert.Equal(t, "Lovelace", rec.LastName)
	assert.Equal(t, "1985-05-05", rec.DateOfBirth)
	assert.Equal(t, "2015-08-20", rec.HireDate)
	assert.True(t, rec.IsActive)
}

func TestTeacherDeletePersistedToJSONL(t *testing.T) {
	b, dir := setupBackend(t)
	table, err := b.Teachers()
	require.NoError(t, err)

	tc := newTeacher(t, "Ada", "Lovelace", "Math")
	require.NoError(t, table.Insert(tc))
	require.NoError(t, table.Delete(tc.ID))

	data, err := os.ReadFile(filepath.Join(dir, teachersJSONL))
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(data)))
}

func TestJSONLNotPrettyPrinted(t *testing.T) {
	b, dir := setupBackend(t)
	table, err := b.Teachers()
	require.NoError(t, err)
	require.NoError(t, table.Insert(newTeacher(t, "A", "B", "C")))
	require.NoError(t, table.Insert(newTeacher(t, "D", "E", "F")))

	data, err := os.ReadFile(filepath.Join(dir, teachersJSONL))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, 2, "one record per line")
}

func TestJSONLPersistenceAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	b := NewBackend()
	require.NoError(t, b.Attach(cfg))
	table, err := b.Teachers()
	require.NoError(t, err)

	var want []*types.Teacher
	for _, last := range []string{"Smith", "Adams"} {
		tc := newTeacher(t, "Pat", last, "Art")
		require.NoError(t, table.Insert(tc))
		want = append(want, tc)
	}
	require.NoError(t, b.Detach())

	b2 := NewBackend()
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()
	table, err = b2.Teachers()
	require.NoError(t, err)
	got, err := table.Fetch(nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteTeachersJSONLAtomic(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeTeachersJSONL(dir, []json.RawMessage{
		json.RawMessage(`{"key":"value1"}`),
		json.RawMessage(`{"key":"value2"}`),
	}))

	records, err := readTeachersJSONL(dir)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")
}

func TestWriteTeachersJSONLFailureLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, teachersJSONL), 0o755))

	err := writeTeachersJSONL(dir, []json.RawMessage{json.RawMessage(`{}`)})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be removed after a failed rename")
}

func TestReadTeachersJSONLMissingFile(t *testing.T) {
	_, err := readTeachersJSONL(t.TempDir())
	assert.Error(t, err)
}

func TestReadTeachersJSONLLongLines(t *testing.T) {
	dir := t.TempDir()
	long := `{"pad":"` + strings.Repeat("x", 2<<20) + `"}`
	broken := `{"pad":"` + strings.Repeat("y", 2<<20)
	content := long + "\n" + broken + "\n" + `{"key":"last"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, teachersJSONL), []byte(content), 0o644))

	records, err := readTeachersJSONL(dir)
	require.NoError(t, err)
	require.Len(t, records, 2, "a long valid line is kept, a long malformed one skipped")
	assert.Len(t, records[0], len(long))
	assert.JSONEq(t, `{"key":"last"}`, string(records[1]))
}
