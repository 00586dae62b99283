package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ellieharper/otj/internal/config"
	"github.com/ellieharper/otj/internal/server"
)

// newServeCmd runs the local journal store, a small HTTP server backed by
// SQLite that speaks the same wire format the client expects. Useful for
// working offline or trying the journal without a remote store.
func newServeCmd(cfg config.Config) *cobra.Command {
	addr := cfg.Addr
	dbPath := cfg.DBPath

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local journal store backed by SQLite",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

			if dbPath == "" {
				dbPath = ":memory:"
				log.Warn("no database path set, journal data will not survive a restart")
			}

			store, err := server.OpenStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := server.NewServer(server.Config{Addr: addr}, store, log)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "Address to listen on")
	cmd.Flags().StringVar(&dbPath, "db", dbPath, "SQLite database path (empty = in-memory)")

	return cmd
}
