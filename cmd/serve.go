package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/topicmap/internal/assets"
	"github.com/ziadkadry99/topicmap/internal/dashboard"
	"github.com/ziadkadry99/topicmap/internal/explorer"
	"github.com/ziadkadry99/topicmap/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the topic explorer dashboard",
	Long: `Loads the topic model assets from the data directory and serves the
explorer page with its JSON, SVG and websocket endpoints. Any asset error
aborts startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		logger := newLogger(cfg)

		a, err := assets.Load(cfg.AssetPaths(), cfg.AssetOptions())
		if err != nil {
			logger.Error().Err(err).Str("data_dir", cfg.DataDir).Msg("loading assets")
			return fmt.Errorf("loading assets: %w", err)
		}
		ex := explorer.New(a)
		logger.Info().Str("data_dir", cfg.DataDir).Stringer("assets", ex).Msg("assets loaded")

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, &logger)

		dash, err := dashboard.New(ex, dashboard.Options{
			SVGCacheSize:   cfg.SVGCacheSize,
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
		}, &logger)
		if err != nil {
			return fmt.Errorf("creating dashboard: %w", err)
		}
		dash.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info().Str("version", Version).Int("port", cfg.Port).Msg("topicmap starting")
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8050, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
