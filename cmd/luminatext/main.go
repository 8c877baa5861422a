package main

import (
	"fmt"
	"os"

	"luminatext/cmd/luminatext/cmd"
	"luminatext/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
