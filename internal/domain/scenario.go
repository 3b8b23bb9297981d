package domain

import "time"

// WeightSumTolerance is how far the sum of component weights may drift
// from 1.0 and still be accepted
const WeightSumTolerance = 0.001

type ScenarioComponent struct {
	AssetID int32   `json:"assetId"`
	Weight  float64 `json:"weight"`
}

type Scenario struct {
	ID            int32               `json:"id"`
	Name          string              `json:"name"`
	FloatedWeight bool                `json:"floatedWeight"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	Components    []ScenarioComponent `json:"components"`
}

// NewScenarioRequest is the part of a Scenario the client submits on
// creation. id and timestamps are assigned by the server
type NewScenarioRequest struct {
	Name          string              `json:"name"`
	FloatedWeight bool                `json:"floatedWeight"`
	Components    []ScenarioComponent `json:"components"`
}

func (s Scenario) WeightLabel() string {
	if s.FloatedWeight {
		return "Floated"
	}
	return "Fixed"
}
