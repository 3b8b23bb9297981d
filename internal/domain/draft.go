package domain

// UnassignedAssetID marks a draft row that has no asset selected yet
const UnassignedAssetID int32 = 0

// DraftComponentRow is one editable row of a draft. Weight is the raw
// text the user typed and may be empty or not a number at all.
type DraftComponentRow struct {
	AssetID int32  `json:"assetId"`
	Weight  string `json:"weight"`
}

func (r DraftComponentRow) IsAssigned() bool {
	return r.AssetID != UnassignedAssetID
}

// DraftRowPatch replaces whichever fields are non-nil
type DraftRowPatch struct {
	AssetID *int32  `json:"assetId,omitempty"`
	Weight  *string `json:"weight,omitempty"`
}

// Draft is the unsaved scenario being composed. It is never persisted
// and always holds at least one row so there is somewhere to type.
type Draft struct {
	Name          string              `json:"name"`
	FloatedWeight bool                `json:"floatedWeight"`
	Rows          []DraftComponentRow `json:"rows"`
}

func NewDraft() *Draft {
	d := &Draft{}
	d.Reset()
	return d
}

func (d *Draft) AddRow() {
	d.Rows = append(d.Rows, DraftComponentRow{AssetID: UnassignedAssetID, Weight: ""})
}

// UpdateRow applies patch to the row at index. out of range is a no-op
// and reports false.
func (d *Draft) UpdateRow(index int, patch DraftRowPatch) bool {
	if index < 0 || index >= len(d.Rows) {
		return false
	}
	if patch.AssetID != nil {
		d.Rows[index].AssetID = *patch.AssetID
	}
	if patch.Weight != nil {
		d.Rows[index].Weight = *patch.Weight
	}
	return true
}

// RemoveRow drops the row at index unless it is the last one left
func (d *Draft) RemoveRow(index int) bool {
	if len(d.Rows) <= 1 {
		return false
	}
	if index < 0 || index >= len(d.Rows) {
		return false
	}
	rows := make([]DraftComponentRow, 0, len(d.Rows)-1)
	rows = append(rows, d.Rows[:index]...)
	rows = append(rows, d.Rows[index+1:]...)
	d.Rows = rows
	return true
}

func (d *Draft) Reset() {
	d.Name = ""
	d.FloatedWeight = false
	d.Rows = []DraftComponentRow{{AssetID: UnassignedAssetID, Weight: ""}}
}

func (d *Draft) SetName(name string) {
	d.Name = name
}

func (d *Draft) SetFloatedWeight(floated bool) {
	d.FloatedWeight = floated
}

func (d Draft) Copy() Draft {
	rows := make([]DraftComponentRow, len(d.Rows))
	copy(rows, d.Rows)
	return Draft{
		Name:          d.Name,
		FloatedWeight: d.FloatedWeight,
		Rows:          rows,
	}
}
