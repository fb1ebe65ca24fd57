package cli

import (
	"github.com/spf13/cobra"

	"github.com/gfret/fretboard/internal/server"
	"github.com/gfret/fretboard/pkg/cache"
	"github.com/gfret/fretboard/pkg/pipeline"
)

// redisKeyPrefix scopes the server's keys in a shared Redis instance.
const redisKeyPrefix = "gfret:"

// serveCommand starts the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		redisAddr  string
		configPath string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Example: `  gfret serve --addr :8080
  gfret serve --redis localhost:6379
  curl 'localhost:8080/v1/render.svg?scale=648' -o strat.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			var runner *pipeline.Runner
			if redisAddr != "" && !noCache {
				rc, err := cache.NewRedisCache(ctx, redisAddr)
				if err != nil {
					return err
				}
				keyer := cache.NewScopedKeyer(cache.VersionedKeyer(cache.NewDefaultKeyer()), redisKeyPrefix)
				runner = pipeline.NewRunner(rc, keyer, c.Logger)
				logger.Info("using redis cache", "addr", redisAddr)
			} else {
				runner, err = c.newRunner(noCache)
				if err != nil {
					return err
				}
			}
			defer runner.Close()

			return server.New(runner, cfg, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for a shared artifact cache")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/gfret/config.toml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}
