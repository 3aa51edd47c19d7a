package service

import (
	"errors"

	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/strength"
)

var ErrNoPassword = errors.New("No password provided")

// AnalyzerService handles password analysis requests.
type AnalyzerService struct {
	analyzer *strength.Analyzer
}

// NewAnalyzerService creates a new AnalyzerService.
func NewAnalyzerService(analyzer *strength.Analyzer) *AnalyzerService {
	return &AnalyzerService{analyzer: analyzer}
}

// Analyze scores the submitted password. Empty input is rejected here even
// though the analyzer itself accepts it.
func (s *AnalyzerService) Analyze(req model.AnalyzeRequest) (model.AnalyzeResponse, error) {
	if req.Password == "" {
		return model.AnalyzeResponse{}, ErrNoPassword
	}

	return model.AnalyzeResponse{
		Password: req.Password,
		Analysis: s.analyzer.Analyze(req.Password),
	}, nil
}
