package calculator

import (
	"math"
	"testing"

	"mcscenario/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNormalizeComponents(t *testing.T) {
	t.Run("drops unassigned and empty rows", func(t *testing.T) {
		rows := []domain.DraftComponentRow{
			{AssetID: 0, Weight: "0.4"},
			{AssetID: 0, Weight: "abc"},
			{AssetID: 0, Weight: ""},
			{AssetID: 3, Weight: ""},
			{AssetID: 1, Weight: "0.6"},
			{AssetID: 2, Weight: " 0.4 "},
		}
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.ScenarioComponent{{AssetID: 1, Weight: 0.6}, {AssetID: 2, Weight: 0.4}},
				NormalizeComponents(rows),
			),
		)
	})

	t.Run("keeps unparseable weights as NaN", func(t *testing.T) {
		out := NormalizeComponents([]domain.DraftComponentRow{{AssetID: 5, Weight: "1/2"}})
		require.Len(t, out, 1)
		require.Equal(t, int32(5), out[0].AssetID)
		require.True(t, math.IsNaN(out[0].Weight))
	})

	t.Run("empty draft", func(t *testing.T) {
		require.Empty(t, NormalizeComponents(domain.NewDraft().Rows))
	})
}

func TestParseWeight(t *testing.T) {
	require.Equal(t, 0.25, ParseWeight("0.25"))
	require.Equal(t, 0.25, ParseWeight("\t.25\n"))
	require.Equal(t, 0.0, ParseWeight("   "))
	require.Equal(t, 100.0, ParseWeight("1e2"))
	require.True(t, math.IsNaN(ParseWeight("0.5abc")))
	require.True(t, math.IsInf(ParseWeight("1e400"), 1))
}

func TestDerivedWeights(t *testing.T) {
	rows := []domain.DraftComponentRow{
		{AssetID: 1, Weight: "0.5"},
		{AssetID: 2, Weight: "x"},
		{AssetID: 0, Weight: "0.2"},
		{AssetID: 0, Weight: "0.1"},
		{AssetID: 0, Weight: "nope"},
		{AssetID: 0, Weight: ""},
	}

	require.InDelta(t, 0.3, UnassignedWeight(rows), 1e-12)
	require.Equal(t, 0.5, TotalWeight(NormalizeComponents(rows)))
	require.Equal(t, 0.0, TotalWeight(nil))
}

func TestFormatWeight(t *testing.T) {
	require.Equal(t, "0.5000", FormatWeight(0.5))
	require.Equal(t, "1.0011", FormatWeight(1.0011))
	require.Equal(t, "0.0000", FormatWeight(0))
	require.Equal(t, "Infinity", FormatWeight(math.Inf(1)))
	require.Equal(t, "60.00%", FormatPercent(0.6))
	require.Equal(t, "33.33%", FormatPercent(1.0/3))
}

func TestValidateDraft(t *testing.T) {
	type testCase struct {
		name          string
		draft         domain.Draft
		expectedError string
	}

	testCases := []testCase{
		{
			name: "blank name",
			draft: domain.Draft{
				Name: " ",
				Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "1"}},
			},
			expectedError: "Scenario name is required.",
		},
		{
			name: "name checked before components",
			draft: domain.Draft{
				Name: "",
				Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "-3"}, {AssetID: 1, Weight: "4"}},
			},
			expectedError: "Scenario name is required.",
		},
		{
			name:          "only a placeholder row",
			draft:         domain.Draft{Name: "x", Rows: []domain.DraftComponentRow{{AssetID: 0, Weight: "1"}}},
			expectedError: "Add at least one component.",
		},
		{
			name:          "asset picked but no weight",
			draft:         domain.Draft{Name: "x", Rows: []domain.DraftComponentRow{{AssetID: 2, Weight: ""}}},
			expectedError: "Add at least one component.",
		},
		{
			name: "zero weight",
			draft: domain.Draft{
				Name: "x",
				Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "1"}, {AssetID: 2, Weight: "0"}},
			},
			expectedError: "Component weights must be non-zero and positive.",
		},
		{
			name: "negative weight",
			draft: domain.Draft{
				Name: "x",
				Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "1.5"}, {AssetID: 2, Weight: "-0.5"}},
			},
			expectedError: "Component weights must be non-zero and positive.",
		},
		{
			name: "unparseable weight",
			draft: domain.Draft{
				Name: "x",
				Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "half"}},
			},
			expectedError: "Component weights must be non-zero and positive.",
		},
		{
			name: "whitespace weight reads as zero",
			draft: domain.Draft{
				Name: "x",
				Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "1"}, {AssetID: 2, Weight: "  "}},
			},
			expectedError: "Component weights must be non-zero and positive.",
		},
		{
			name:          "single component at half",
			draft:         domain.Draft{Name: "x", Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "0.5"}}},
			expectedError: "Weights must sum to 1.0 (currently 0.5000).",
		},
		{
			name: "just over tolerance",
			draft: domain.Draft{
				Name: "x",
				Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "0.5"}, {AssetID: 2, Weight: "0.5011"}},
			},
			expectedError: "Weights must sum to 1.0 (currently 1.0011).",
		},
		{
			name: "sum checked before duplicates",
			draft: domain.Draft{
				Name: "x",
				Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "0.5"}, {AssetID: 1, Weight: "0.6"}},
			},
			expectedError: "Weights must sum to 1.0 (currently 1.1000).",
		},
		{
			name: "duplicate asset with exact sum",
			draft: domain.Draft{
				Name: "x",
				Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "0.5"}, {AssetID: 1, Weight: "0.5"}},
			},
			expectedError: "Each asset can only appear once.",
		},
		{
			name: "placeholder rows are ignored by the sum",
			draft: domain.Draft{
				Name: "x",
				Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "0.5"}, {AssetID: 0, Weight: "0.5"}},
			},
			expectedError: "Weights must sum to 1.0 (currently 0.5000).",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.draft.Copy()
			req, err := ValidateDraft(tc.draft)
			require.Nil(t, req)
			require.EqualError(t, err, tc.expectedError)
			require.ErrorAs(t, err, &ValidationError{})
			require.Equal(t, "", cmp.Diff(before, tc.draft))
		})
	}

	t.Run("within tolerance", func(t *testing.T) {
		req, err := ValidateDraft(domain.Draft{
			Name: "x",
			Rows: []domain.DraftComponentRow{{AssetID: 1, Weight: "0.5"}, {AssetID: 2, Weight: "0.5009"}},
		})
		require.NoError(t, err)
		require.Len(t, req.Components, 2)
	})

	t.Run("balanced", func(t *testing.T) {
		req, err := ValidateDraft(domain.Draft{
			Name:          "Balanced",
			FloatedWeight: false,
			Rows: []domain.DraftComponentRow{
				{AssetID: 1, Weight: "0.6"},
				{AssetID: 2, Weight: "0.4"},
			},
		})
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(&domain.NewScenarioRequest{
				Name:          "Balanced",
				FloatedWeight: false,
				Components: []domain.ScenarioComponent{
					{AssetID: 1, Weight: 0.6},
					{AssetID: 2, Weight: 0.4},
				},
			}, req),
		)
	})

	t.Run("trims name and keeps floated flag", func(t *testing.T) {
		req, err := ValidateDraft(domain.Draft{
			Name:          "  Growth ",
			FloatedWeight: true,
			Rows: []domain.DraftComponentRow{
				{AssetID: 0, Weight: "0.3"},
				{AssetID: 9, Weight: "1"},
				{AssetID: 0, Weight: ""},
			},
		})
		require.NoError(t, err)
		require.Equal(t, "Growth", req.Name)
		require.True(t, req.FloatedWeight)
		require.Equal(t, []domain.ScenarioComponent{{AssetID: 9, Weight: 1}}, req.Components)
	})
}

func TestValidateAgainstCatalog(t *testing.T) {
	assets := []domain.Asset{{ID: 1, Symbol: "SPY"}, {ID: 2, Symbol: "AGG"}}

	require.NoError(t, ValidateAgainstCatalog([]domain.ScenarioComponent{{AssetID: 1, Weight: 1}}, assets))
	err := ValidateAgainstCatalog([]domain.ScenarioComponent{{AssetID: 2, Weight: 0.5}, {AssetID: 7, Weight: 0.5}}, assets)
	require.EqualError(t, err, "Unknown asset id 7.")
}

func TestRowsFromPairs(t *testing.T) {
	assets := []domain.Asset{{ID: 1, Symbol: "SPY"}, {ID: 2, Symbol: "AGG"}}

	t.Run("resolves symbols case-insensitively", func(t *testing.T) {
		rows, err := RowsFromPairs([]string{"spy=0.6", " AGG = 0.4"}, assets)
		require.NoError(t, err)
		require.Equal(t, []domain.DraftComponentRow{{AssetID: 1, Weight: "0.6"}, {AssetID: 2, Weight: "0.4"}}, rows)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := RowsFromPairs([]string{"QQQ=1"}, assets)
		require.EqualError(t, err, "no asset found for symbol QQQ")
	})

	t.Run("malformed pair", func(t *testing.T) {
		_, err := RowsFromPairs([]string{"SPY"}, assets)
		require.Error(t, err)
	})
}
