package leadtime_test

import (
	"testing"

	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularTable(t *testing.T) {
	table := leadtime.RegularTable()

	tests := []struct {
		state string
		want  int
	}{
		{"MA", 4},
		{"CT", 4},
		{"NY", 4},
		{"ME", 5},
		{"NH", 5},
		{"CA", 6},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Lookup(tt.state))
		})
	}

	assert.Equal(t, 6, table.Fallback())
	assert.Equal(t, []string{"CT", "MA", "ME", "NH", "NY"}, table.States())
}

func TestRushTable(t *testing.T) {
	table := leadtime.RushTable()

	tests := []struct {
		state string
		want  int
	}{
		{"MA", 2},
		{"CT", 2},
		{"NY", 3},
		{"NH", 3},
		{"ME", 4},
		{"CA", 4},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Lookup(tt.state))
		})
	}

	assert.False(t, table.Has("ME"), "ME takes the rush fallback")
	assert.Equal(t, 4, table.Fallback())
}

func TestTable_LookupMissesFallBack(t *testing.T) {
	table := leadtime.RegularTable()

	for _, state := range []string{"", "ma", "Ma", " MA", "MA ", "XX", "Massachusetts"} {
		assert.Equal(t, table.Fallback(), table.Lookup(state), "state %q", state)
		assert.False(t, table.Has(state), "state %q", state)
	}
}

func TestTable_AllValuesArePositive(t *testing.T) {
	for _, table := range []leadtime.Table{leadtime.RegularTable(), leadtime.RushTable()} {
		assert.GreaterOrEqual(t, table.Min(), leadtime.MinDays)
		for state, days := range table.Entries() {
			assert.GreaterOrEqual(t, days, leadtime.MinDays, "state %s", state)
		}
	}

	assert.Equal(t, 4, leadtime.RegularTable().Min())
	assert.Equal(t, 2, leadtime.RushTable().Min())
}

func TestTableFor(t *testing.T) {
	assert.Equal(t, leadtime.RushTable().Entries(), leadtime.TableFor(true).Entries())
	assert.Equal(t, leadtime.RegularTable().Entries(), leadtime.TableFor(false).Entries())
}

func TestNewTable(t *testing.T) {
	t.Run("copies its input", func(t *testing.T) {
		days := map[string]int{"VT": 3}

		table, err := leadtime.NewTable(days, 7)
		require.NoError(t, err)
		days["VT"] = 9
		days["RI"] = 1

		assert.Equal(t, 3, table.Lookup("VT"))
		assert.Equal(t, 7, table.Lookup("RI"))
		require.NoError(t, table.Validate())
	})

	t.Run("entries are a copy", func(t *testing.T) {
		table, err := leadtime.NewTable(map[string]int{"VT": 3}, 7)
		require.NoError(t, err)

		entries := table.Entries()
		entries["VT"] = 100

		assert.Equal(t, 3, table.Lookup("VT"))
	})

	t.Run("empty table uses the fallback for everything", func(t *testing.T) {
		table, err := leadtime.NewTable(nil, 5)

		require.NoError(t, err)
		assert.Equal(t, 5, table.Lookup("MA"))
		assert.Equal(t, 5, table.Min())
		assert.Empty(t, table.States())
	})

	t.Run("rejects values below the minimum", func(t *testing.T) {
		_, err := leadtime.NewTable(map[string]int{"VT": 0, "RI": -1}, 4)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "0 is VT")
		assert.Contains(t, err.Error(), "-1 is RI")
	})

	t.Run("rejects an out of range fallback", func(t *testing.T) {
		_, err := leadtime.NewTable(map[string]int{"VT": 2}, leadtime.MaxDays+1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "is fallback")
	})

	t.Run("rejects an empty state code", func(t *testing.T) {
		_, err := leadtime.NewTable(map[string]int{"": 2}, 4)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero table is not constructed", func(t *testing.T) {
		var table leadtime.Table

		assert.Equal(t, leadtime.ErrTableIsNotConstructed, table.Validate())
	})
}
