package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2/cobrazerolog"
	"github.com/spf13/cobra"
)

func RegisterRootFlags(cmd *cobra.Command) {
	cobrazerolog.New().RegisterFlags(cmd.PersistentFlags())
}

func NewRootCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:           programName,
		Short:         "Cartesian products of sequences",
		Long:          "Evaluates Cartesian products of sequences and generates the fixed-arity product functions of the cartesian package.",
		Example:       rootExample(programName),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
}

func rootExample(programName string) string {
	return fmt.Sprintf(`	%[2]s:
		%[1]s expand 0..2 a,b

	%[3]s:
		%[1]s gen --output pkg/cartesian/zz_generated.product.go
`,
		programName,
		color.YellowString("Print every pair of 0..2 and a,b"),
		color.GreenString("Regenerate the product functions"),
	)
}
