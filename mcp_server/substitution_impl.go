package mcp_server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/liteblogging/cipher-solver/internal/cryptogram"
)

type substitutionServiceImpl struct {
	dictionary          *cryptogram.Dictionary
	defaultMaxSolutions int
	defaultTimeout      time.Duration
}

// NewSubstitutionService builds a SubstitutionService backed by the
// constraint-propagation core. defaultMaxSolutions/defaultTimeout apply
// whenever a request leaves MaxSolutions/TimeoutMs unset.
func NewSubstitutionService(dictionary *cryptogram.Dictionary, defaultMaxSolutions int, defaultTimeout time.Duration) SubstitutionService {
	return &substitutionServiceImpl{dictionary: dictionary, defaultMaxSolutions: defaultMaxSolutions, defaultTimeout: defaultTimeout}
}

func (s *substitutionServiceImpl) Solve(ctx context.Context, req *SubstitutionRequest) (*SubstitutionResponse, error) {
	if s.dictionary == nil {
		return nil, fmt.Errorf("dictionary not loaded")
	}

	maxSolutions := req.MaxSolutions
	if maxSolutions <= 0 {
		maxSolutions = s.defaultMaxSolutions
	}
	if maxSolutions <= 0 {
		maxSolutions = 10
	}

	timeout := s.defaultTimeout
	if req.TimeoutMs > 0 {
		timeout = time.Duration(req.TimeoutMs) * time.Millisecond
	}

	solutions, err := cryptogram.Solve(req.CipherText, s.dictionary, maxSolutions, timeout)
	if err != nil {
		return nil, err
	}

	response := &SubstitutionResponse{Solutions: make([]SubstitutionSolution, len(solutions))}
	for i, solution := range solutions {
		entries := make([]SubstitutionCipherEntry, len(solution.Cipher))
		for j, entry := range solution.Cipher {
			entries[j] = SubstitutionCipherEntry{Cipher: entry.Cipher, Plain: entry.Plain}
		}
		response.Solutions[i] = SubstitutionSolution{
			Plaintext:     solution.Plaintext,
			Cipher:        entries,
			MeanFrequency: solution.MeanFrequency,
		}
	}
	return response, nil
}

// HandleSubstitutionSolve provides an HTTP handler for the Substitution solve operation.
func HandleSubstitutionSolve(service SubstitutionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Only POST method is supported", http.StatusMethodNotAllowed)
			return
		}

		var req SubstitutionRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		resp, err := service.Solve(r.Context(), &req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
