package main

import (
	"fmt"
	"os"

	"bikram/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand(cli.Options{})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bikram: %v\n", err)
		os.Exit(1)
	}
}
