package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "github.com/yschiang/sampling-wizard/sampling/strategy"
	"github.com/yschiang/sampling-wizard/server"
)

var (
	// CLI flags for the serve subcommand
	listenAddr string // Address the HTTP service binds to
)

// serveCmd runs the sampling pipeline as an HTTP service
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the sampling pipeline over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		srv := server.NewServer()
		if err := srv.ListenAndServe(listenAddr); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", ":8080", "Listen address for the HTTP service")
	rootCmd.AddCommand(serveCmd)
}
