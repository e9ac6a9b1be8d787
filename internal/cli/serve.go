package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbukum/errkit/internal/demo"
	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/server"
	"github.com/kbukum/errkit/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the demo HTTP server",
	Long: `Starts an HTTP server with the error handler installed, the demo routes,
the health, version and catalog endpoints, and the OpenAPI document of the
documented routes.

Configuration comes from the config file and ERRKIT_* environment variables,
e.g. ERRKIT_SERVER_PORT=9090.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, cfg.Base.Name)
	logger.SetGlobalLogger(log)

	srv, err := newServer(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return err
	}
	log.Info("errkit is serving", map[string]interface{}{
		"addr":    srv.Addr(),
		"version": version.Get().String(),
	})

	<-ctx.Done()
	return srv.Stop(context.Background())
}

// newServer assembles the server: middleware, error handler, endpoints,
// demo routes and docs.
func newServer(cfg *Config, log *logger.Logger) (*server.Server, error) {
	kinds, err := cfg.Errors.Kinds()
	if err != nil {
		return nil, err
	}

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()

	docs := server.NewDocs(cfg.Base.Name, version.Get().Version)
	plugin, err := server.Setup(srv.GinEngine(), log,
		server.WithErrors(kinds),
		server.WithCloseConnection(cfg.Server.CloseConnection),
		server.WithDocs(docs),
	)
	if err != nil {
		return nil, err
	}

	srv.RegisterDefaultEndpoints(cfg.Base.Name, plugin.Errors)
	srv.RegisterDocs(docs)
	if err := demo.Register(srv.GinEngine(), plugin); err != nil {
		return nil, fmt.Errorf("register demo routes: %w", err)
	}
	return srv, nil
}
