package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength     = 8
	DefaultLength = 16
)

// Validation messages are shown to end users verbatim.
var (
	ErrLengthTooShort   = errors.New("Password length should be at least 8 characters")
	ErrNoCharacterTypes = errors.New("At least one character type must be selected")
	ErrRandomSource     = errors.New("secure random source failed")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// charsets returns the selected character sets in pool order.
func (o GeneratorOptions) charsets() []string {
	var sets []string
	if o.Lowercase {
		sets = append(sets, lowercaseChars)
	}
	if o.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if o.Numbers {
		sets = append(sets, numberChars)
	}
	if o.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// Validate checks the options without drawing any randomness.
func (o GeneratorOptions) Validate() error {
	if o.Length < MinLength {
		return ErrLengthTooShort
	}
	if len(o.charsets()) == 0 {
		return ErrNoCharacterTypes
	}
	return nil
}

// Generator draws passwords from a cryptographically secure source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading from r. A nil reader selects crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Generate creates a cryptographically secure random password using crypto/rand.
func Generate(opts GeneratorOptions) (string, error) {
	return NewGenerator(nil).Generate(opts)
}

// Generate creates a random password based on the given options. The result
// always holds at least one character of every selected type.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	requiredSets := opts.charsets()
	var pool string
	for _, charset := range requiredSets {
		pool += charset
	}

	result := make([]byte, opts.Length)

	// Guarantee at least one character from each selected type.
	for i, charset := range requiredSets {
		ch, err := g.randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randIndex returns a uniform index in [0, n).
func (g *Generator) randIndex(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}

func (g *Generator) randChar(charset string) (byte, error) {
	i, err := g.randIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// shuffle performs a Fisher-Yates shuffle with every swap index drawn from the secure source.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.randIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
