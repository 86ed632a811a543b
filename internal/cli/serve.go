package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blydeben/sankey-app/internal/api"
	"github.com/blydeben/sankey-app/pkg/cache"
	"github.com/blydeben/sankey-app/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr          string
		cacheBackend  string
		redisAddr     string
		redisPassword string
		redisDB       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Sankey layout HTTP API",
		Long: `Run the Sankey layout HTTP API.

Endpoints:
  POST /v1/diagram   compute a diagram layout from an edge list
  GET  /v1/palettes  list the built-in color palettes
  GET  /healthz      liveness probe
  GET  /metrics      Prometheus metrics

Computed diagrams are cached in the selected backend. Use --cache redis
when running more than one instance behind a load balancer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := serveCache(cacheBackend, redisAddr, redisPassword, redisDB)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(store, c.Logger)
			defer runner.Close()

			printInfo("Serving layout API on %s", addr)
			return api.NewServer(runner, c.Logger).Start(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&cacheBackend, "cache", "file", "cache backend: file, redis, none")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "redis address (with --cache redis)")
	cmd.Flags().StringVar(&redisPassword, "redis-password", "", "redis password")
	cmd.Flags().IntVar(&redisDB, "redis-db", 0, "redis database number")

	return cmd
}

// serveCache builds the cache backend selected by --cache.
func serveCache(backend, redisAddr, redisPassword string, redisDB int) (cache.Cache, error) {
	switch backend {
	case "file":
		return newCache(false)
	case "redis":
		return cache.NewRedisCache(redisAddr, redisPassword, redisDB), nil
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want file, redis, or none)", backend)
	}
}
