// Command ideabank runs the idea bank API server and its maintenance tasks.
//
// Usage:
//
//	ideabank serve
//	ideabank migrate up|status
//	ideabank token --user-id=1 --role=ADMIN
//	ideabank set-manager --office=1 --email=manager@example.com
//
// Configuration is read from CONFIG_PATH (fallback ./config.yaml) and the
// environment.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ideabank-backend/internal/app"
)

var rootCmd = &cobra.Command{
	Use:           "ideabank",
	Short:         "Idea bank API server",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd, setManagerCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
