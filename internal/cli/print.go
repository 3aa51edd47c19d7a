package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/strength"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printGenerated(w io.Writer, r model.GenerateResponse) {
	fmt.Fprintf(w, "Password:  %s\n", r.Password)
	printAnalysis(w, r.Analysis)
}

func printAnalysis(w io.Writer, a strength.Analysis) {
	fmt.Fprintf(w, "Strength:  %s (%d/10)\n", a.Strength, a.Score)
	fmt.Fprintf(w, "Length:    %d\n", a.Length)
	fmt.Fprintf(w, "Types:     %d\n", a.CharTypes)
	fmt.Fprintf(w, "Entropy:   %.1f\n", a.Entropy)
	for _, f := range a.Feedback {
		fmt.Fprintf(w, "  + %s\n", f)
	}
	for _, warn := range a.Warnings {
		fmt.Fprintf(w, "  ! %s\n", warn)
	}
}

func printSeparator(w io.Writer) {
	fmt.Fprintln(w)
}
