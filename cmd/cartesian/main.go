package main

import (
	"fmt"
	"os"

	log "github.com/authzed/cartesian/internal/logging"
)

func main() {
	rootCmd := buildRootCommand("cartesian")
	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("terminated with errors")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
