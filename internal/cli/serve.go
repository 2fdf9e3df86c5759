package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/toyz/quicktest/internal/generator"
	"github.com/toyz/quicktest/internal/metrics"
	"github.com/toyz/quicktest/internal/server"
)

func (a *App) newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scaffold API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.config.Server.Addr
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			service := a.newService(generator.WithRecorder(metrics.New(registry)))

			srv := server.NewServer(&server.Config{Addr: addr}, service, registry, a.diagnostics)

			ctx, stop := notifyContext(cmd.Context())
			defer stop()
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8085)")
	return cmd
}

// notifyContext is cancelled on interrupt or SIGTERM
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
