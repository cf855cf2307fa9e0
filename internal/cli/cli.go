package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/storygraph/storygraph/pkg/api"
	"github.com/storygraph/storygraph/pkg/cache"
	"github.com/storygraph/storygraph/pkg/config"
	"github.com/storygraph/storygraph/pkg/pipeline"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. This is
// typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	verbose    bool
	configPath string
	apiURL     string
	token      string
}

// Execute runs the storygraph CLI and returns an error if any command fails.
// The context bounds every command; cancelling it aborts in-flight fetches
// and shuts the serve command down gracefully.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var flags rootFlags

	root := &cobra.Command{
		Use:          "storygraph",
		Short:        "Storygraph renders entity relationship graphs",
		Long:         `Storygraph fetches stories, fragments, characters, and locations from a storyteller backend and renders their relationships as SVG graphs.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("storygraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default: user config dir)")
	root.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "backend base URL (overrides config)")
	root.PersistentFlags().StringVar(&flags.token, "token", "", "bearer token (overrides config)")

	root.AddCommand(newRenderCmd(&flags))
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newTagsCmd(&flags))
	root.AddCommand(newServeCmd(&flags))
	root.AddCommand(newCacheCmd(&flags))

	return root.ExecuteContext(ctx)
}

// runtime bundles the configured gateway and cache for a command run.
type runtime struct {
	cfg   config.Config
	gw    *api.Gateway
	cache cache.Cache
}

// setup loads the configuration, applies flag overrides, and opens the
// gateway and cache backends.
func setup(ctx context.Context, flags *rootFlags) (*runtime, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.apiURL != "" {
		cfg.API.BaseURL = flags.apiURL
	}
	if flags.token != "" {
		cfg.API.Token = flags.token
	}

	gw, err := api.NewGateway(cfg.API.BaseURL,
		api.WithToken(cfg.API.Token),
		api.WithTimeout(cfg.API.TimeoutDuration()),
	)
	if err != nil {
		return nil, err
	}

	c, err := openCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, gw: gw, cache: c}, nil
}

func openCache(ctx context.Context, cfg config.Cache) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "storygraph")
	case config.CacheNone:
		return cache.NewNullCache(), nil
	default:
		return cache.NewFileCache(cfg.Dir)
	}
}

func (rt *runtime) runner() *pipeline.Runner {
	return pipeline.NewRunner(rt.gw, rt.cache, rt.cfg.Cache.TTLDuration())
}

func (rt *runtime) close() {
	if err := rt.cache.Close(); err != nil {
		charmlog.Debug("closing cache", "err", err)
	}
}
