package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-preview/internal/export"
	"github.com/jonathan/resume-preview/internal/server"
	"github.com/jonathan/resume-preview/internal/server/ratelimit"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes rendering, layout variants and PDF export.
Stored resumes are served when a database is configured; PDF export is enabled when a
Chrome or Chromium binary is found.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: port from config, PORT, or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	srvCfg := server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
		Render:         cfg.RenderOptions(),
		RateLimit:      ratelimit.LoadConfig(os.Getenv, cfg.ExportRate),
	}

	if cfg.DatabaseURL != "" {
		database, err := openDB(context.Background(), cfg)
		if err != nil {
			return err
		}
		defer database.Close()
		srvCfg.Records = database
	} else {
		log.Printf("DATABASE_URL not set; stored resume routes are disabled")
	}

	exporter := export.NewChromeExporter(cfg.Chrome, cfg.ExportTimeout(), verbose)
	if exporter.Available() {
		srvCfg.Exporter = exporter
	} else {
		log.Printf("No Chrome or Chromium found; PDF export is disabled")
	}

	return server.New(srvCfg).Start()
}
