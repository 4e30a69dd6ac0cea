package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcedb/arcedb/internal/config"
	"github.com/arcedb/arcedb/internal/logging"
	"github.com/arcedb/arcedb/internal/server"
	"github.com/arcedb/arcedb/internal/storage"
)

var (
	flagAddr       string
	flagReadBuffer int
	flagLogLevel   string
	flagLogFormat  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcedb server",
	Long: `Start the arcedb server, binding a TCP listener and serving
RESP requests until interrupted.

Configuration is resolved from flags, then ARCEDB_-prefixed environment
variables, then an optional --config YAML file, then built-in defaults,
in decreasing precedence.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "bind address (default \":6379\")")
	serveCmd.Flags().IntVar(&flagReadBuffer, "read-buffer", 0, "per-connection read buffer size in bytes (default 4096)")
	serveCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error (default \"info\")")
	serveCmd.Flags().StringVar(&flagLogFormat, "log-format", "", "console|json (default \"console\")")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	db := storage.New()
	srv := server.New(server.Config{Addr: cfg.Addr, ReadBuffer: cfg.ReadBuffer}, db, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}
