package strength

import (
	"math"
	"unicode/utf8"
)

// Nominal pool sizes used by the entropy estimate. The symbol size is fixed
// at 32 regardless of which symbols actually appear.
const (
	lowerPoolSize  = 26
	upperPoolSize  = 26
	digitPoolSize  = 10
	symbolPoolSize = 32
)

// classes records which character classes appear in a password.
type classes struct {
	upper, lower, digit, symbol bool
}

func classify(password string) classes {
	var c classes
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.symbol = true
		}
	}
	return c
}

func (c classes) count() int {
	n := 0
	for _, present := range []bool{c.upper, c.lower, c.digit, c.symbol} {
		if present {
			n++
		}
	}
	return n
}

func (c classes) poolSize() int {
	pool := 0
	if c.lower {
		pool += lowerPoolSize
	}
	if c.upper {
		pool += upperPoolSize
	}
	if c.digit {
		pool += digitPoolSize
	}
	if c.symbol {
		pool += symbolPoolSize
	}
	return pool
}

// Entropy returns the strength proxy length * sqrt(pool), where pool is the
// summed nominal size of the classes present. This is not Shannon entropy;
// the scoring thresholds depend on this exact formula.
func Entropy(password string) float64 {
	return entropy(utf8.RuneCountInString(password), classify(password))
}

func entropy(length int, c classes) float64 {
	pool := c.poolSize()
	if pool == 0 {
		return 0
	}
	return float64(length) * math.Sqrt(float64(pool))
}
