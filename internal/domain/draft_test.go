package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func int32Ptr(i int32) *int32 {
	return &i
}

func strPtr(s string) *string {
	return &s
}

func TestDraft(t *testing.T) {
	t.Run("new draft has one unassigned row", func(t *testing.T) {
		d := NewDraft()
		require.Equal(
			t,
			"",
			cmp.Diff(
				&Draft{Rows: []DraftComponentRow{{AssetID: 0, Weight: ""}}},
				d,
			),
		)
	})

	t.Run("add then remove restores rows", func(t *testing.T) {
		drafts := []*Draft{
			NewDraft(),
			{Rows: []DraftComponentRow{{AssetID: 1, Weight: "0.5"}, {AssetID: 2, Weight: "abc"}}},
			{Rows: []DraftComponentRow{{AssetID: 0, Weight: "0.3"}, {AssetID: 3, Weight: ""}, {AssetID: 3, Weight: "1"}}},
		}
		for _, d := range drafts {
			before := d.Copy()
			d.AddRow()
			require.Len(t, d.Rows, len(before.Rows)+1)
			require.True(t, d.RemoveRow(len(d.Rows)-1))
			require.Equal(t, "", cmp.Diff(before.Rows, d.Rows))
		}
	})

	t.Run("cannot remove the last row", func(t *testing.T) {
		d := &Draft{Rows: []DraftComponentRow{{AssetID: 4, Weight: "1"}}}
		require.False(t, d.RemoveRow(0))
		require.Equal(t, []DraftComponentRow{{AssetID: 4, Weight: "1"}}, d.Rows)
	})

	t.Run("remove keeps order of remaining rows", func(t *testing.T) {
		d := &Draft{Rows: []DraftComponentRow{{AssetID: 1}, {AssetID: 2}, {AssetID: 3}}}
		require.True(t, d.RemoveRow(1))
		require.Equal(t, []DraftComponentRow{{AssetID: 1}, {AssetID: 3}}, d.Rows)
		require.False(t, d.RemoveRow(5))
		require.False(t, d.RemoveRow(-1))
		require.Len(t, d.Rows, 2)
	})

	t.Run("update patches only given fields", func(t *testing.T) {
		d := NewDraft()
		require.True(t, d.UpdateRow(0, DraftRowPatch{AssetID: int32Ptr(7)}))
		require.True(t, d.UpdateRow(0, DraftRowPatch{Weight: strPtr("0.25")}))
		require.Equal(t, DraftComponentRow{AssetID: 7, Weight: "0.25"}, d.Rows[0])
	})

	t.Run("update out of range is a no-op", func(t *testing.T) {
		d := NewDraft()
		require.False(t, d.UpdateRow(1, DraftRowPatch{AssetID: int32Ptr(7)}))
		require.False(t, d.UpdateRow(-1, DraftRowPatch{AssetID: int32Ptr(7)}))
		require.Equal(t, []DraftComponentRow{{}}, d.Rows)
	})

	t.Run("reset clears everything", func(t *testing.T) {
		d := &Draft{
			Name:          "Balanced",
			FloatedWeight: true,
			Rows:          []DraftComponentRow{{AssetID: 1, Weight: "0.6"}, {AssetID: 2, Weight: "0.4"}},
		}
		d.Reset()
		require.Equal(t, "", cmp.Diff(NewDraft(), d))
	})

	t.Run("copy does not share rows", func(t *testing.T) {
		d := NewDraft()
		c := d.Copy()
		d.UpdateRow(0, DraftRowPatch{Weight: strPtr("1")})
		require.Equal(t, "", c.Rows[0].Weight)
	})
}

func TestHeartbeat_UnhealthyServices(t *testing.T) {
	h := Heartbeat{
		"postgres":      true,
		"alphaVantage":  false,
		"simulation":    false,
		"scenarioStore": true,
	}
	require.Equal(t, []string{"alphaVantage", "simulation"}, h.UnhealthyServices())
	require.Empty(t, Heartbeat{}.UnhealthyServices())
}
