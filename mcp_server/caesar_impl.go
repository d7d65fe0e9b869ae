package mcp_server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/liteblogging/cipher-solver/cmd"
	"github.com/liteblogging/cipher-solver/internal/cryptogram"
)

// caesarServiceImpl ranks shifts by mean dictionary word frequency when a
// dictionary is available; dictionary may be nil, in which case shifts are
// returned in raw rotation order, matching the CLI's --dictionary-less path.
type caesarServiceImpl struct {
	dictionary *cryptogram.Dictionary
}

// NewCaesarService constructs a CaesarService. dictionary may be nil.
func NewCaesarService(dictionary *cryptogram.Dictionary) CaesarService {
	return &caesarServiceImpl{dictionary: dictionary}
}

func (s *caesarServiceImpl) Shift(ctx context.Context, req *CaesarRequest) (*CaesarResponse, error) {
	cmdResults := cmd.PerformCaesarShifts(req.Text)
	cmdResults = cmd.RankCaesarShifts(cmdResults, s.dictionary)

	mcpShifts := make([]CaesarShiftResult, 0, len(cmdResults))
	for _, res := range cmdResults {
		mcpShifts = append(mcpShifts, CaesarShiftResult{
			ShiftedText: res.ShiftedText,
			Shift:       res.Shift,
			Score:       res.Score,
		})
	}

	return &CaesarResponse{Shifts: mcpShifts}, nil
}

// HandleCaesarShift provides an HTTP handler for the Caesar cipher shift
// operation, matching the constructor-injected pattern the other MCP/HTTP
// services use.
func HandleCaesarShift(service CaesarService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Only POST method is supported", http.StatusMethodNotAllowed)
			return
		}

		var req CaesarRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := service.Shift(r.Context(), &req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
