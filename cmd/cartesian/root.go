package main

import (
	"github.com/spf13/cobra"

	"github.com/authzed/cartesian/pkg/cmd"
)

func buildRootCommand(programName string) *cobra.Command {
	rootCmd := cmd.NewRootCommand(programName)
	cmd.RegisterRootFlags(rootCmd)

	var expandConfig cmd.ExpandConfig
	expandCmd := cmd.NewExpandCommand(rootCmd.Use, &expandConfig)
	cmd.RegisterExpandFlags(expandCmd, &expandConfig)
	rootCmd.AddCommand(expandCmd)

	var genConfig cmd.GenConfig
	genCmd := cmd.NewGenCommand(rootCmd.Use, &genConfig)
	cmd.RegisterGenFlags(genCmd, &genConfig)
	rootCmd.AddCommand(genCmd)

	rootCmd.AddCommand(cmd.NewVersionCommand(rootCmd.Use))

	return rootCmd
}
