package model

// CostRange is a rupiah price band stored as JSONB on catalog records.
// External data is untrusted: a missing or partial range unmarshals to zeros.
type CostRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}
