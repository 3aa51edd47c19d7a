// Package cli implements the pwcheck command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passcheck/internal/crypto"
	"github.com/vaultpass/passcheck/internal/service"
	"github.com/vaultpass/passcheck/internal/strength"
)

// Upper bounds for a single invocation.
const (
	MaxLength = 1024
	MaxCount  = 100
)

// NewRootCmd builds the pwcheck command tree. Length limits come from gen.
func NewRootCmd(gen *service.GeneratorService, analyzer *strength.Analyzer) *cobra.Command {
	root := &cobra.Command{
		Use:           "pwcheck",
		Short:         "Generate strong passwords and check password strength",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	root.AddCommand(newGenerateCmd(gen))
	root.AddCommand(newAnalyzeCmd(analyzer))

	return root
}

// Execute runs the root command
func Execute() {
	analyzer := strength.NewAnalyzer(nil)
	gen := service.NewGeneratorService(crypto.NewGenerator(nil), analyzer, MaxLength)

	root := NewRootCmd(gen, analyzer)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
