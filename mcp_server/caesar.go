package mcp_server

import "context"

// CaesarRequest defines the input for the Caesar cipher operation.
type CaesarRequest struct {
	Text string `json:"text"`
}

// CaesarShiftResult represents a single shifted string. Score is the mean
// dictionary word frequency of the shifted text (0 when the service has no
// dictionary loaded), the same measure cmd.CaesarShiftResult.Score reports.
type CaesarShiftResult struct {
	ShiftedText string  `json:"shiftedText"`
	Shift       int     `json:"shift"`
	Score       float64 `json:"score,omitempty"`
}

// CaesarResponse defines the output for the Caesar cipher operation. Shifts
// is sorted best-scoring first when the service has a dictionary loaded.
type CaesarResponse struct {
	Shifts []CaesarShiftResult `json:"shifts"`
}

// CaesarService defines the interface for Caesar cipher operations.
type CaesarService interface {
	Shift(ctx context.Context, req *CaesarRequest) (*CaesarResponse, error)
}
