package domain

import "time"

// Asset is a symbol the backend has synced market data for. ids are
// assigned by the server and never change.
type Asset struct {
	ID            int32     `json:"id"`
	Symbol        string    `json:"symbol"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

type SyncAssetRequest struct {
	Symbol string `json:"symbol"`
}

// SyncResult is returned by the sync endpoint. Date is whatever the
// server formatted, usually an ISO-8601 date
type SyncResult struct {
	Date    string `json:"date"`
	Message string `json:"message,omitempty"`
}

func AssetsByID(assets []Asset) map[int32]Asset {
	out := map[int32]Asset{}
	for _, a := range assets {
		out[a.ID] = a
	}
	return out
}
