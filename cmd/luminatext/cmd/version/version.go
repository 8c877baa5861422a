package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"luminatext/internal/api/server"
)

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of luminatext",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(server.Version)
		return nil
	},
}
