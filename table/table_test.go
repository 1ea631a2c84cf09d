package table_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"row-caster/table"
)

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("splits lines on commas and trims cells", func(t *testing.T) {
		t.Parallel()

		rows, err := table.Read(strings.NewReader("id, first_name ,gender\n1,  Ada ,Female\n"))
		require.NoError(t, err)

		assert.Equal(t, table.Table{
			{"id", "first_name", "gender"},
			{"1", "Ada", "Female"},
		}, rows)
	})

	t.Run("drops blank trailing lines only", func(t *testing.T) {
		t.Parallel()

		rows, err := table.Read(strings.NewReader("a,b\n1,2\n\n\n"))
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("keeps blank lines in the middle", func(t *testing.T) {
		t.Parallel()

		rows, err := table.Read(strings.NewReader("a,b\n\n1,2\n"))
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, table.Row{""}, rows[1])
	})

	t.Run("keeps trailing rows of bare delimiters", func(t *testing.T) {
		t.Parallel()

		rows, err := table.Read(strings.NewReader("a,b\n,\n"))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, table.Row{"", ""}, rows[1])
	})

	t.Run("empty input yields no rows", func(t *testing.T) {
		t.Parallel()

		rows, err := table.Read(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("reader failure surfaces as ReadError", func(t *testing.T) {
		t.Parallel()

		broken := errors.New("disk gone")

		_, err := table.Read(&failingReader{err: broken})

		var rerr *table.ReadError
		require.ErrorAs(t, err, &rerr)
		assert.ErrorIs(t, err, broken)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("empty table fails with ErrNoRows", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, table.Table{}.Validate(), table.ErrNoRows)
	})

	t.Run("header-only table is valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, table.Table{{"a", "b"}}.Validate())
	})

	t.Run("uniform table is valid", func(t *testing.T) {
		t.Parallel()

		tab := table.Table{{"a", "b"}, {"1", "2"}, {"3", "4"}}
		assert.NoError(t, tab.Validate())
	})

	t.Run("reports every offending line number", func(t *testing.T) {
		t.Parallel()

		tab := table.Table{
			{"a", "b"},      // line 1, header
			{"1", "2"},      // line 2, ok
			{"1"},           // line 3, short
			{"1", "2"},      // line 4, ok
			{"1", "2", "3"}, // line 5, long
		}

		err := tab.Validate()

		var cerr *table.ColumnCountError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, []int{3, 5}, cerr.Lines)
	})
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
