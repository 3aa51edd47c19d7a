package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passcheck/internal/crypto"
	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/strength"
)

var ErrLengthTooLong = errors.New("password length exceeds the allowed maximum")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *crypto.Generator
	analyzer  *strength.Analyzer
	maxLength int
}

// NewGeneratorService creates a new GeneratorService. A maxLength of zero
// or less disables the upper bound.
func NewGeneratorService(gen *crypto.Generator, analyzer *strength.Analyzer, maxLength int) *GeneratorService {
	return &GeneratorService{
		generator: gen,
		analyzer:  analyzer,
		maxLength: maxLength,
	}
}

// Generate produces a password based on the given request and analyzes it.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    intOrDefault(req.Length, crypto.DefaultLength),
		Lowercase: boolOrDefault(req.IncludeLower, true),
		Uppercase: boolOrDefault(req.IncludeUpper, true),
		Numbers:   boolOrDefault(req.IncludeNumbers, true),
		Symbols:   boolOrDefault(req.IncludeSymbols, true),
	}

	if s.maxLength > 0 && opts.Length > s.maxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.maxLength)
	}

	password, err := s.generator.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Analysis: s.analyzer.Analyze(password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
