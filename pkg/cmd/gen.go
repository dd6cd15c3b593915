package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/authzed/cartesian/internal/logging"
	"github.com/authzed/cartesian/internal/productgen"
)

// GenConfig is the configuration for the gen command.
type GenConfig struct {
	productgen.Config

	// Output is the path of the generated file, or "-" for stdout.
	Output string
}

func RegisterGenFlags(cmd *cobra.Command, config *GenConfig) {
	cmd.Flags().StringVar(&config.Package, "package", productgen.DefaultPackage, "package clause of the generated file")
	cmd.Flags().IntVar(&config.MaxArity, "max-arity", productgen.DefaultMaxArity, "largest arity to generate tuple and product functions for")
	cmd.Flags().StringVar(&config.Output, "output", "-", `path of the generated file ("-" for stdout)`)
}

func NewGenCommand(programName string, config *GenConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "gen",
		Short:   "generate the fixed-arity tuple and product functions",
		Example: fmt.Sprintf("  %s gen --max-arity 8 --output zz_generated.product.go", programName),
		Args:    cobra.NoArgs,
		PreRunE: DefaultPreRunE(programName),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Generate(cmd.OutOrStdout())
		},
	}
}

// Generate renders the configured source and writes it to the configured
// output, or to stdout when the output is "-".
func (c *GenConfig) Generate(stdout io.Writer) error {
	logging.Debug().Fields(c.DebugMap()).Str("output", c.Output).Msg("generating products")

	src, err := productgen.Generate(c.Config)
	if err != nil {
		return err
	}

	if c.Output == "-" || c.Output == "" {
		_, err := stdout.Write(src)
		return err
	}

	if err := os.WriteFile(c.Output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write generated source: %w", err)
	}

	logging.Info().Str("path", c.Output).Int("max-arity", c.MaxArity).Str("size", humanize.Bytes(uint64(len(src)))).Msg("wrote generated products")
	return nil
}
