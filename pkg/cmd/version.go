package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authzed/cartesian/pkg/releases"
)

func NewVersionCommand(programName string) *cobra.Command {
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "displays the version of " + programName,
		Args:    cobra.NoArgs,
		PreRunE: DefaultPreRunE(programName),
		RunE: func(cmd *cobra.Command, args []string) error {
			bi, err := releases.BuildInfo()
			if err != nil {
				return err
			}

			includeDeps, err := cmd.Flags().GetBool("include-deps")
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), releases.UsageVersion(programName, bi, includeDeps))
			return err
		},
	}
	versionCmd.Flags().Bool("include-deps", false, "include versions of dependencies")
	return versionCmd
}
