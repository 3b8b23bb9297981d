package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mcscenario/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	ErrMsgNameRequired     = "Scenario name is required."
	ErrMsgNoComponents     = "Add at least one component."
	ErrMsgNonPositive      = "Component weights must be non-zero and positive."
	ErrMsgDuplicateAsset   = "Each asset can only appear once."
	errMsgWeightSumPattern = "Weights must sum to 1.0 (currently %s)."
	errMsgUnknownAsset     = "Unknown asset id %d."
)

// ValidationError is a rejection produced locally before anything is sent
// to the server. Message is shown to the user as is
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ParseWeight reads weight text the way a browser number input coerces it:
// surrounding whitespace is ignored, blank text is zero and anything
// else that isn't a number is NaN
func ParseWeight(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		// ParseFloat reports ±Inf with ErrRange for overflow, which is
		// still a number
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NormalizeComponents keeps rows that have an asset and some weight text,
// in row order. weights that don't parse come through as NaN
func NormalizeComponents(rows []domain.DraftComponentRow) []domain.ScenarioComponent {
	out := []domain.ScenarioComponent{}
	for _, row := range rows {
		if !row.IsAssigned() || row.Weight == "" {
			continue
		}
		out = append(out, domain.ScenarioComponent{
			AssetID: row.AssetID,
			Weight:  ParseWeight(row.Weight),
		})
	}
	return out
}

// UnassignedWeight sums the weight typed into rows with no asset picked
// yet. it never blocks submission
func UnassignedWeight(rows []domain.DraftComponentRow) float64 {
	sum := 0.0
	for _, row := range rows {
		if row.IsAssigned() || row.Weight == "" {
			continue
		}
		value := ParseWeight(row.Weight)
		if isFinite(value) {
			sum += value
		}
	}
	return sum
}

// TotalWeight must be given the output of NormalizeComponents so the
// displayed total agrees with ValidateDraft
func TotalWeight(normalized []domain.ScenarioComponent) float64 {
	sum := 0.0
	for _, c := range normalized {
		if isFinite(c.Weight) {
			sum += c.Weight
		}
	}
	return sum
}

// FormatWeight renders a weight or sum with four decimal places
func FormatWeight(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	return decimal.NewFromFloat(f).StringFixed(4)
}

// FormatPercent renders a weight as a percentage with two decimals
func FormatPercent(f float64) string {
	if !isFinite(f) {
		return FormatWeight(f) + "%"
	}
	return decimal.NewFromFloat(f).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// ValidateDraft runs the submission checks in order and stops at the first
// failure. on success the returned request has the trimmed name and the
// normalized components
func ValidateDraft(draft domain.Draft) (*domain.NewScenarioRequest, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, ValidationError{Message: ErrMsgNameRequired}
	}

	components := NormalizeComponents(draft.Rows)
	if len(components) == 0 {
		return nil, ValidationError{Message: ErrMsgNoComponents}
	}

	for _, c := range components {
		if !isFinite(c.Weight) || c.Weight <= 0 {
			return nil, ValidationError{Message: ErrMsgNonPositive}
		}
	}

	sum := 0.0
	for _, c := range components {
		sum += c.Weight
	}
	if math.Abs(sum-1) > domain.WeightSumTolerance {
		return nil, ValidationError{Message: fmt.Sprintf(errMsgWeightSumPattern, FormatWeight(sum))}
	}

	seen := map[int32]struct{}{}
	for _, c := range components {
		if _, ok := seen[c.AssetID]; ok {
			return nil, ValidationError{Message: ErrMsgDuplicateAsset}
		}
		seen[c.AssetID] = struct{}{}
	}

	return &domain.NewScenarioRequest{
		Name:          name,
		FloatedWeight: draft.FloatedWeight,
		Components:    components,
	}, nil
}

// ValidateAgainstCatalog rejects components pointing at assets the catalog
// doesn't know about. the first unknown id in component order is reported
func ValidateAgainstCatalog(components []domain.ScenarioComponent, assets []domain.Asset) error {
	byID := domain.AssetsByID(assets)
	for _, c := range components {
		if _, ok := byID[c.AssetID]; !ok {
			return ValidationError{Message: fmt.Sprintf(errMsgUnknownAsset, c.AssetID)}
		}
	}
	return nil
}

// ResolveAssetID finds the id of the asset with the given symbol, ignoring
// case and surrounding whitespace
func ResolveAssetID(symbol string, assets []domain.Asset) (int32, error) {
	want := strings.ToUpper(strings.TrimSpace(symbol))
	if want == "" {
		return 0, fmt.Errorf("symbol is required")
	}
	for _, a := range assets {
		if strings.ToUpper(a.Symbol) == want {
			return a.ID, nil
		}
	}
	return 0, fmt.Errorf("no asset found for symbol %s", want)
}

// RowsFromPairs builds draft rows from SYMBOL=WEIGHT pairs. the weight
// text is kept as typed so it goes through the same validation as rows
// entered one at a time
func RowsFromPairs(pairs []string, assets []domain.Asset) ([]domain.DraftComponentRow, error) {
	rows := []domain.DraftComponentRow{}
	for _, pair := range pairs {
		symbol, weight, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid component %q, expected SYMBOL=WEIGHT", pair)
		}
		assetID, err := ResolveAssetID(symbol, assets)
		if err != nil {
			return nil, err
		}
		rows = append(rows, domain.DraftComponentRow{
			AssetID: assetID,
			Weight:  strings.TrimSpace(weight),
		})
	}
	return rows, nil
}
