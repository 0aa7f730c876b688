package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/veridex/internal/api"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the verification HTTP API",
	Long: `Serve starts the HTTP API:

  POST   /api/v1/verify       verify a piece of text
  GET    /api/v1/status       service and provider status
  GET    /api/v1/cache/stats  result cache statistics
  DELETE /api/v1/cache        clear the result cache
  GET    /health              liveness check`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8420)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	eng, results, providers, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	server := api.NewServer(eng, results, providers)

	fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)
	return server.Run(cfg.Server.Addr)
}
