package mcp_server

import "context"

// SubstitutionRequest defines the input for the Substitution solve operation.
type SubstitutionRequest struct {
	CipherText   string `json:"cipherText"`
	MaxSolutions int    `json:"maxSolutions"`
	TimeoutMs    int    `json:"timeoutMs"`
}

// SubstitutionCipherEntry mirrors internal/cryptogram.CipherEntry for the
// wire format, keeping the JSON contract independent of the core package.
type SubstitutionCipherEntry struct {
	Cipher string `json:"cipher"`
	Plain  string `json:"plain"`
}

// SubstitutionSolution represents a single ranked plaintext candidate.
type SubstitutionSolution struct {
	Plaintext     string                    `json:"plaintext"`
	Cipher        []SubstitutionCipherEntry `json:"cipher"`
	MeanFrequency float64                   `json:"meanFrequency"`
}

// SubstitutionResponse defines the output for the Substitution solve operation.
type SubstitutionResponse struct {
	Solutions []SubstitutionSolution `json:"solutions"`
}

// SubstitutionService defines the interface for Substitution operations.
type SubstitutionService interface {
	Solve(ctx context.Context, req *SubstitutionRequest) (*SubstitutionResponse, error)
}
