package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passcheck/internal/crypto"
	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/service"
)

type generateOptions struct {
	length    int
	noLower   bool
	noUpper   bool
	noNumbers bool
	noSymbols bool
	count     int
	json      bool
}

func (o generateOptions) request() model.GenerateRequest {
	length := o.length
	lower, upper, numbers, symbols := !o.noLower, !o.noUpper, !o.noNumbers, !o.noSymbols
	return model.GenerateRequest{
		Length:         &length,
		IncludeLower:   &lower,
		IncludeUpper:   &upper,
		IncludeNumbers: &numbers,
		IncludeSymbols: &symbols,
	}
}

func newGenerateCmd(gen *service.GeneratorService) *cobra.Command {
	var o generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.count < 1 || o.count > MaxCount {
				return fmt.Errorf("count must be between 1 and %d", MaxCount)
			}

			req := o.request()
			results := make([]model.GenerateResponse, 0, o.count)
			for i := 0; i < o.count; i++ {
				resp, err := gen.Generate(req)
				if err != nil {
					return err
				}
				results = append(results, resp)
			}

			out := cmd.OutOrStdout()
			if o.json {
				if o.count == 1 {
					return writeJSON(out, results[0])
				}
				return writeJSON(out, results)
			}
			for i, r := range results {
				if i > 0 {
					printSeparator(out)
				}
				printGenerated(out, r)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&o.length, "length", "l", crypto.DefaultLength, "Password length")
	cmd.Flags().BoolVar(&o.noLower, "no-lower", false, "Exclude lowercase letters")
	cmd.Flags().BoolVar(&o.noUpper, "no-upper", false, "Exclude uppercase letters")
	cmd.Flags().BoolVar(&o.noNumbers, "no-numbers", false, "Exclude digits")
	cmd.Flags().BoolVar(&o.noSymbols, "no-symbols", false, "Exclude symbols")
	cmd.Flags().IntVarP(&o.count, "count", "c", 1, "Number of passwords to generate")
	cmd.Flags().BoolVar(&o.json, "json", false, "Print results as JSON")

	return cmd
}
