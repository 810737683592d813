package load

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Ranges
		wantErr string
	}{
		{"single", "3", Ranges{3}, ""},
		{"list", "0, 2, 1", Ranges{0, 1, 2}, ""},
		{"range", "0-3", Ranges{0, 1, 2, 3}, ""},
		{"mixed", "0-2, 8, 16-17", Ranges{0, 1, 2, 8, 16, 17}, ""},
		{"duplicates", "1-3, 2, 3", Ranges{1, 2, 3}, ""},
		{"spaces and empty parts", " 4 , , 5 ", Ranges{4, 5}, ""},
		{"empty", "", nil, ""},
		{"reversed", "4-2", nil, "range end before start"},
		{"not a number", "two", nil, "not an integer"},
		{"negative", "-1", nil, "not an integer"},
		{"limit", "100", Ranges{MaxArity}, ""},
		{"above the limit", "101", nil, "arity 101 above the limit 100"},
		{"range above the limit", "0-5000000", nil, "above the limit"},
		{"range to max int", "0-9223372036854775807", nil, "above the limit"},
		{"overflowing value", "99999999999999999999", nil, "not an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanges(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangesString(t *testing.T) {
	assert.Equal(t, "0-4, 8, 16-17", Ranges{0, 1, 2, 3, 4, 8, 16, 17}.String())
	assert.Equal(t, "5", Ranges{5}.String())
	assert.Equal(t, "", Ranges(nil).String())
}

func TestRangesYAML(t *testing.T) {
	t.Run("round trips through the compact syntax", func(t *testing.T) {
		out, err := yaml.Marshal(struct {
			Arities Ranges `yaml:"arities"`
		}{Ranges{0, 1, 2, 7}})
		require.NoError(t, err)
		assert.Contains(t, string(out), "0-2, 7")

		tbl, err := Parse(out)
		require.NoError(t, err)
		assert.Equal(t, Ranges{0, 1, 2, 7}, tbl.Arities)
	})

	t.Run("rejects mappings", func(t *testing.T) {
		_, err := Parse([]byte("arities:\n  from: 1\n"))
		require.Error(t, err)
		var lerr *Error
		require.True(t, errors.As(err, &lerr))
		assert.Equal(t, "arities", lerr.Field)
	})
}

func TestFile(t *testing.T) {
	t.Run("loads every field", func(t *testing.T) {
		path := filepath.Join("testdata", "pipei.yaml")
		tbl, err := File(path)
		require.NoError(t, err)

		assert.Equal(t, path, tbl.Path)
		assert.Equal(t, "pipei", tbl.Package)
		assert.Equal(t, "out", tbl.Target)
		assert.Equal(t, "Code generated by pipeigen. DO NOT EDIT.", tbl.Header)
		require.NotNil(t, tbl.MaxArity)
		assert.Equal(t, 32, *tbl.MaxArity)
		assert.Equal(t, Ranges{0, 1, 2, 3, 4, 8, 16, 17}, tbl.Arities)
		assert.Equal(t, []string{"curried", "pipe", "tap"}, tbl.Features)
		assert.Equal(t, map[string]string{"pipe": "thread_first"}, tbl.Names)
		assert.Empty(t, tbl.TagPrefix)
		assert.Empty(t, tbl.SelectTag)
	})

	t.Run("accepts a sequence of arities", func(t *testing.T) {
		tbl, err := File(filepath.Join("testdata", "sequence.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Ranges{0, 2, 5, 6}, tbl.Arities)
		assert.Nil(t, tbl.MaxArity)
	})

	t.Run("reports the file and field of a bad range", func(t *testing.T) {
		path := filepath.Join("testdata", "bad_range.yaml")
		_, err := File(path)
		require.Error(t, err)

		var lerr *Error
		require.True(t, errors.As(err, &lerr))
		assert.Equal(t, path, lerr.Path)
		assert.Equal(t, "arities", lerr.Field)
		assert.Contains(t, err.Error(), `"4-2"`)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := File(filepath.Join("testdata", "unknown_field.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "arity")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := File(filepath.Join(t.TempDir(), DefaultFile))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}

func TestParse(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		tbl, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, &Table{}, tbl)
	})

	t.Run("negative max arity", func(t *testing.T) {
		_, err := Parse([]byte("max_arity: -1\n"))
		require.Error(t, err)
		var lerr *Error
		require.True(t, errors.As(err, &lerr))
		assert.Equal(t, "max_arity", lerr.Field)
	})
}
