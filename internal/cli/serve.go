package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/dpkgview/pkg/cache"
	"github.com/matzehuels/dpkgview/pkg/observability"
	"github.com/matzehuels/dpkgview/pkg/server"
	"github.com/matzehuels/dpkgview/pkg/watch"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		watchFile bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve package queries over HTTP",
		Long: `Serve runs a JSON API over the status file:

  GET /api/packages          every package name
  GET /api/packages/{name}   one package's details
  GET /healthz               liveness
  GET /metrics               Prometheus metrics

With --watch (or watch = true in the config file) the cache is purged as soon
as dpkg rewrites the status file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("watch") {
				cfg.Watch = watchFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			prom := observability.NewPrometheus(reg)
			observability.SetQueryHooks(prom)
			observability.SetCacheHooks(prom)
			observability.SetHTTPHooks(prom)
			defer observability.Reset()

			svc, ch, err := c.newService(ctx, cfg)
			if err != nil {
				return err
			}
			defer ch.Close()

			srv := server.New(svc, server.Options{
				Addr:         cfg.Server.Addr,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
				Logger:       logger,
				Metrics:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
			})

			printInfo("Serving %s", cfg.StatusPath)
			printKeyValue("Address", "http://"+cfg.Server.Addr)
			printKeyValue("Cache", cfg.Cache.Backend)

			g, gctx := errgroup.WithContext(ctx)
			if cfg.Watch {
				w, err := watch.New(cfg.StatusPath, 0, purgeOnChange(gctx, ch, logger), logger)
				if err != nil {
					return err
				}
				g.Go(func() error { return w.Run(gctx) })
			}
			g.Go(func() error { return srv.Run(gctx) })
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	cmd.Flags().BoolVar(&watchFile, "watch", false, "purge the cache when the status file changes")
	return cmd
}

// purgeOnChange drops every cached entry. Keys already change with the
// file's size and mtime; purging frees entries that can no longer be hit.
func purgeOnChange(ctx context.Context, ch cache.Cache, logger *log.Logger) func() {
	return func() {
		if err := ch.Purge(ctx); err != nil {
			logger.Warn("cache purge failed", "err", err)
		}
	}
}
