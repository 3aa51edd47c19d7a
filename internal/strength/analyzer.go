// Package strength scores passwords and explains the score.
package strength

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minScore = 0
	maxScore = 10
)

// commonPatterns are substrings that cost two points wherever they appear.
var commonPatterns = []string{"123", "abc", "qwerty", "password", "admin", "welcome"}

// sequences holds every 3-character run of a-z and 0-9.
var sequences = buildSequences("abcdefghijklmnopqrstuvwxyz", "0123456789")

func buildSequences(alphabets ...string) []string {
	var seqs []string
	for _, a := range alphabets {
		for i := 0; i+3 <= len(a); i++ {
			seqs = append(seqs, a[i:i+3])
		}
	}
	return seqs
}

// Analysis is the scored report for a single password.
type Analysis struct {
	Score         int      `json:"score"`
	Strength      string   `json:"strength"`
	StrengthClass string   `json:"strength_class"`
	Color         string   `json:"color"`
	Feedback      []string `json:"feedback"`
	Warnings      []string `json:"warnings"`
	Length        int      `json:"length"`
	Entropy       float64  `json:"entropy"`
	CharTypes     int      `json:"char_types"`
}

// Analyzer scores passwords against a fixed denylist. It holds no mutable
// state and is safe for concurrent use.
type Analyzer struct {
	denylist *Denylist
}

// NewAnalyzer creates an Analyzer. A nil denylist selects the built-in list.
func NewAnalyzer(denylist *Denylist) *Analyzer {
	if denylist == nil {
		denylist = DefaultDenylist()
	}
	return &Analyzer{denylist: denylist}
}

// Analyze scores password with the built-in denylist.
func Analyze(password string) Analysis {
	return NewAnalyzer(nil).Analyze(password)
}

// Analyze runs every check against password and returns the report.
// It never fails; an empty password simply scores 0.
func (a *Analyzer) Analyze(password string) Analysis {
	score := 0
	feedback := []string{}
	warnings := []string{}

	length := utf8.RuneCountInString(password)
	switch {
	case length >= 16:
		score += 3
		feedback = append(feedback, "Excellent length (16+ characters)")
	case length >= 12:
		score += 2
		feedback = append(feedback, "Good length (12-15 characters)")
	case length >= 8:
		score++
		feedback = append(feedback, "Minimum acceptable length (8-11 characters)")
	default:
		warnings = append(warnings, "Too short (minimum 8 characters required)")
	}

	c := classify(password)
	charTypes := c.count()
	switch {
	case charTypes >= 4:
		score += 2
		feedback = append(feedback, "Contains all character types (upper, lower, numbers, symbols)")
	case charTypes == 3:
		score++
		feedback = append(feedback, "Contains 3 character types")
	default:
		warnings = append(warnings, fmt.Sprintf("Limited character variety (%d types)", charTypes))
	}

	for _, check := range []struct {
		present bool
		what    string
	}{
		{c.upper, "uppercase letters"},
		{c.lower, "lowercase letters"},
		{c.digit, "numbers"},
		{c.symbol, "symbols"},
	} {
		if check.present {
			feedback = append(feedback, "Contains "+check.what)
		} else {
			warnings = append(warnings, "Missing "+check.what)
		}
	}

	if hasRepeatedRun(password, 3) {
		score--
		warnings = append(warnings, "Contains repeated characters")
	}

	folded := lower(password)
	if containsAny(folded, commonPatterns) {
		score -= 2
		warnings = append(warnings, "Contains common patterns")
	}

	denied := a.denylist.Contains(password)
	if denied {
		score = 0
		warnings = append(warnings, "This is a very common password - DO NOT USE!")
	}

	e := entropy(length, c)
	switch {
	case e > 100:
		score += 2
		feedback = append(feedback, fmt.Sprintf("High entropy (%.1f bits)", e))
	case e > 80:
		score++
		feedback = append(feedback, fmt.Sprintf("Moderate entropy (%.1f bits)", e))
	default:
		warnings = append(warnings, fmt.Sprintf("Low entropy (%.1f bits)", e))
	}

	if containsAny(folded, sequences) {
		score--
		warnings = append(warnings, "Contains sequential characters")
	}

	// A denylisted password ends at zero no matter what the later checks add.
	if denied {
		score = 0
	}
	score = min(max(score, minScore), maxScore)
	level := LevelFor(score)

	return Analysis{
		Score:         score,
		Strength:      level.Name,
		StrengthClass: level.Class,
		Color:         level.Color,
		Feedback:      feedback,
		Warnings:      warnings,
		Length:        length,
		Entropy:       e,
		CharTypes:     charTypes,
	}
}

// hasRepeatedRun reports whether some character occurs n or more times in a
// row. Newlines never count toward a run.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == '\n' {
			run = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
