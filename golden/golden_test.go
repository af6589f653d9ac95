package golden

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klingtnet/slugify"
)

const goldenJSON = `{
  "accented": {
    "input": "C'est déjà l'été.",
    "expected": "cest-deja-lete"
  },
  "entities-off": {
    "input": "foo &amp; bar",
    "options": {"entities": false},
    "expected": "foo-amp-bar"
  },
  "truncated": {
    "input": "This is a test with a long text to truncate",
    "options": {"max_length": 10, "word_boundary": true},
    "expected": "this-is-a"
  },
  "replacements": {
    "input": "10 | 20 %",
    "options": {"replacements": [{"from": "|", "to": "or"}, {"from": "%", "to": "percent"}]},
    "expected": "10-or-20-percent"
  }
}`

func TestRead(t *testing.T) {
	f, err := Read(strings.NewReader(goldenJSON))
	require.NoError(t, err)
	require.Len(t, f, 4)

	t.Run("defaults apply to omitted options", func(t *testing.T) {
		require.Equal(t, slugify.DefaultOptions(), f["accented"].Options)
	})

	t.Run("set fields override defaults only", func(t *testing.T) {
		opts := f["entities-off"].Options
		require.False(t, opts.Entities)
		require.True(t, opts.Decimal)
		require.True(t, opts.Lowercase)
		require.Equal(t, "-", opts.Separator)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Read(strings.NewReader("not json"))
		require.Error(t, err)
	})
}

func TestVerify(t *testing.T) {
	f, err := Read(strings.NewReader(goldenJSON))
	require.NoError(t, err)

	t.Run("all cases match", func(t *testing.T) {
		mismatches, err := f.Verify(context.Background(), 4)
		require.NoError(t, err)
		require.Empty(t, mismatches)
	})

	t.Run("mismatch is reported", func(t *testing.T) {
		broken := Case{Input: "hello world", Options: slugify.DefaultOptions(), Expected: "goodbye"}
		f["broken"] = broken
		defer delete(f, "broken")

		mismatches, err := f.Verify(context.Background(), 4)
		require.NoError(t, err)
		require.Len(t, mismatches, 1)
		require.Equal(t, Mismatch{ID: "broken", Got: "hello-world", Want: "goodbye"}, mismatches[0])
	})

	t.Run("bad options fail verification", func(t *testing.T) {
		opts := slugify.DefaultOptions()
		opts.MaxLength = -1
		f["invalid"] = Case{Input: "x", Options: opts}
		defer delete(f, "invalid")

		_, err := f.Verify(context.Background(), 4)
		require.ErrorIs(t, err, slugify.ErrBadOptions)
	})

	t.Run("concurrency below one", func(t *testing.T) {
		_, err := f.Verify(context.Background(), 0)
		require.ErrorIs(t, err, slugify.ErrNotEnoughConcurrency)
	})
}

func TestUpdate(t *testing.T) {
	f := File{
		"stale": {Input: "Hello World", Options: slugify.DefaultOptions(), Expected: "outdated"},
	}

	err := f.Update(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "hello-world", f["stale"].Expected)

	mismatches, err := f.Verify(context.Background(), 2)
	require.NoError(t, err)
	require.Empty(t, mismatches)
}

func TestWriteRoundTrip(t *testing.T) {
	f, err := Read(strings.NewReader(goldenJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	reread, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, f, reread)
}

func TestSaveAndLoad(t *testing.T) {
	f, err := Read(strings.NewReader(goldenJSON))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "golden.json")
	require.NoError(t, f.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, f, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
