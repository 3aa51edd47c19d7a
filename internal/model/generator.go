package model

import "github.com/vaultpass/passcheck/internal/strength"

// GenerateRequest represents a password generation request.
// Pointer fields distinguish between missing (nil -> default) and explicit values.
type GenerateRequest struct {
	Length         *int  `json:"length"`
	IncludeUpper   *bool `json:"include_upper"`
	IncludeLower   *bool `json:"include_lower"`
	IncludeNumbers *bool `json:"include_numbers"`
	IncludeSymbols *bool `json:"include_symbols"`
}

// GenerateResponse carries a generated password and its self-check analysis.
type GenerateResponse struct {
	Password string            `json:"password"`
	Analysis strength.Analysis `json:"analysis"`
}
