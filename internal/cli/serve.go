package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/adhan/internal/api"
	"github.com/smokyabdulrahman/adhan/internal/config"
	"github.com/smokyabdulrahman/adhan/internal/logging"
)

var flagAddr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve prayer times over HTTP",
		Long: "Run a JSON HTTP API exposing timings, monthly calendars, night markers and the qibla.\n\n" +
			"Settings come from the environment (or a .env file):\n" +
			"  " + config.EnvPrefix + "ADDR              listen address (default :8080)\n" +
			"  " + config.EnvPrefix + "CORS_ORIGINS      comma-separated allowed origins (default *)\n" +
			"  " + config.EnvPrefix + "LOG_LEVEL         zerolog level (default info)\n" +
			"  " + config.EnvPrefix + "SHUTDOWN_TIMEOUT  graceful shutdown limit (default 10s)\n\n" +
			"The configured method, madhab, high-latitude rule, adjustments and time zone are the\n" +
			"defaults for requests that do not name their own.",
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides "+config.EnvPrefix+"ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	sc, err := config.LoadServer()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		sc.Addr = flagAddr
	}

	if err := logging.SetupJSON(cmd.ErrOrStderr(), sc.LogLevel); err != nil {
		return err
	}

	defaults, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	// Reject invalid defaults before listening.
	if _, err := defaults.Parameters(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("addr", sc.Addr).
		Strs("cors_origins", sc.CORSOrigins).
		Str("method", defaults.Method).
		Msg("starting api")

	return api.New(sc, *defaults).Run(ctx)
}
