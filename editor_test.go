package vis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustEditor(t *testing.T, path string) *Editor {
	t.Helper()
	e, err := Load(path)
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

func contents(t *testing.T, e *Editor) string {
	t.Helper()
	var out []byte
	err := e.Iterate(0, func(pos int64, b []byte) bool {
		out = append(out, b...)
		return true
	})
	require.NoError(t, err)
	return string(out)
}

func TestLoadEmpty(t *testing.T) {
	e := mustEditor(t, "")
	require.EqualValues(t, 0, e.Size())
	require.False(t, e.Modified())
	require.Equal(t, "", contents(t, e))
}

func TestLoadExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))

	e := mustEditor(t, path)
	require.EqualValues(t, 11, e.Size())
	require.Equal(t, "hello world", contents(t, e))
}

func TestLoadNotRegularFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	require.ErrorIs(t, err, ErrNotRegularFile)
}

func TestInsertAtBoundaries(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, []byte("world")))
	require.Equal(t, "world", contents(t, e))

	require.NoError(t, e.Insert(0, []byte("hello ")))
	require.Equal(t, "hello world", contents(t, e))

	require.NoError(t, e.Insert(e.Size(), []byte("!")))
	require.Equal(t, "hello world!", contents(t, e))
}

func TestInsertMidPieceSplits(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, []byte("heworld")))
	e.Snapshot()
	require.NoError(t, e.Insert(2, []byte("llo ")))
	require.Equal(t, "hello world", contents(t, e))
}

func TestInsertOutOfRange(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, []byte("abc")))
	err := e.Insert(4, []byte("x"))
	require.ErrorIs(t, err, ErrOutOfRange)
	err = e.Insert(-1, []byte("x"))
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestInsertEmptyIsNoop(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, nil))
	require.EqualValues(t, 0, e.Size())
	require.False(t, e.Modified())
}

func TestDeleteAcrossPieces(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, []byte("hello")))
	e.Snapshot()
	require.NoError(t, e.Insert(5, []byte(" world")))
	e.Snapshot()
	require.NoError(t, e.Insert(11, []byte("!!!")))

	require.Equal(t, "hello world!!!", contents(t, e))

	require.NoError(t, e.Delete(3, 8))
	require.Equal(t, "hel!!!", contents(t, e))
}

func TestDeleteOutOfRange(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, []byte("abc")))
	require.ErrorIs(t, e.Delete(2, 5), ErrOutOfRange)
	require.ErrorIs(t, e.Delete(-1, 1), ErrOutOfRange)
}

func TestDeleteZeroIsNoop(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, []byte("abc")))
	require.NoError(t, e.Delete(1, 0))
	require.Equal(t, "abc", contents(t, e))
}

func TestReplace(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, []byte("hello world")))
	require.NoError(t, e.Replace(6, []byte("there")))
	require.Equal(t, "hello there", contents(t, e))
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, []byte("hello")))
	e.Snapshot()
	require.NoError(t, e.Delete(1, 2))
	require.Equal(t, "hlo", contents(t, e))

	require.True(t, e.Undo())
	require.Equal(t, "hello", contents(t, e))

	require.True(t, e.Undo())
	require.Equal(t, "", contents(t, e))

	require.False(t, e.Undo())

	require.True(t, e.Redo())
	require.Equal(t, "hello", contents(t, e))

	require.True(t, e.Redo())
	require.Equal(t, "hlo", contents(t, e))

	require.False(t, e.Redo())
}

func TestUndoClearsRedoOnNewEdit(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Insert(0, []byte("abc")))
	e.Snapshot()
	require.NoError(t, e.Insert(3, []byte("def")))
	require.True(t, e.Undo())
	require.Equal(t, "abc", contents(t, e))

	e.Snapshot()
	require.NoError(t, e.Insert(3, []byte("xyz")))
	require.False(t, e.Redo())
	require.Equal(t, "abcxyz", contents(t, e))
}

func TestModifiedAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))

	e := mustEditor(t, path)
	require.False(t, e.Modified())

	require.NoError(t, e.Insert(3, []byte("def")))
	require.True(t, e.Modified())

	require.NoError(t, e.Save(path))
	require.False(t, e.Modified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "abcdef", string(data))
}

func TestSaveRoundTripsThroughReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))

	e := mustEditor(t, path)
	require.NoError(t, e.Delete(5, 6))
	require.NoError(t, e.Insert(5, []byte(", Go!")))
	require.NoError(t, e.Save(path))
	require.NoError(t, e.Close())

	e2 := mustEditor(t, path)
	require.Equal(t, "hello, Go!", contents(t, e2))
}

func TestClosedEditorRejectsMutation(t *testing.T) {
	e := mustEditor(t, "")
	require.NoError(t, e.Close())
	require.ErrorIs(t, e.Insert(0, []byte("x")), ErrClosed)
	require.ErrorIs(t, e.Delete(0, 1), ErrClosed)
}
