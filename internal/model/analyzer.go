package model

import "github.com/vaultpass/passcheck/internal/strength"

// AnalyzeRequest represents a password analysis request.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// AnalyzeResponse echoes the submitted password with its analysis.
type AnalyzeResponse struct {
	Password string            `json:"password"`
	Analysis strength.Analysis `json:"analysis"`
}
