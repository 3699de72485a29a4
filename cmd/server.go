package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skyreport/skyreport/internal/config"
	"github.com/skyreport/skyreport/internal/openweather"
	"github.com/skyreport/skyreport/internal/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the weather lookup HTTP server",
	Long:  `Start the HTTP server that serves normalized current conditions and forecasts for a requested city.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	log.Info("Starting weather lookup server",
		zap.String("config_path", configPath),
		zap.Bool("telemetry_enabled", cfg.Telemetry.Enabled),
		zap.Int("server_port", cfg.Server.Port))

	client, err := openweather.NewClient(cfg.Provider, log, tele)
	if err != nil {
		return err
	}

	srv := server.NewServer(client, log, tele)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		log.Error("Server error", zap.Error(err))
		return err
	case <-cmd.Context().Done():
		log.Info("Shutting down server")

		if err := srv.Shutdown(); err != nil {
			log.Error("Error during server shutdown", zap.Error(err))
			return err
		}

		log.Info("Server shutdown complete")
		return nil
	}
}
