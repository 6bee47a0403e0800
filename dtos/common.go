// Package dtos holds the JSON transport objects exchanged with API clients.
// Field names are camelCase; dates use DateLayout, times of day TimeLayout
// and audit timestamps TimestampLayout.
package dtos

import "github.com/shopspring/decimal"

func init() {
	// amounts go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	ShortTimeLayout = "15:04"
	TimestampLayout = "2006-01-02 15:04:05"
)

// StatusUpdate is the body of the PUT /{id}/status endpoints.
type StatusUpdate struct {
	Status string `json:"status" validate:"required"`
}
