package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"luminatext/cmd/luminatext/cmd/serve"
	"luminatext/cmd/luminatext/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "luminatext",
	Short: "HTTP backend that transcribes media uploads and keeps their history",
	Long: `LuminaText accepts media file uploads, forwards them to a speech-to-text
provider, stores the resulting transcripts in MongoDB, and serves the
transcription history over a small JSON API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
