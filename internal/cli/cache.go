package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storygraph/storygraph/pkg/cache"
	"github.com/storygraph/storygraph/pkg/config"
	"github.com/storygraph/storygraph/pkg/errors"
)

// newCacheCmd creates the cache management command.
func newCacheCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}

	cmd.AddCommand(newCacheClearCmd(flags))
	cmd.AddCommand(newCacheInfoCmd(flags))

	return cmd
}

// fileCache loads the config and opens the file cache backend. The clear and
// info subcommands only operate on the file backend; redis instances are
// expected to manage their own keyspace via TTLs.
func fileCache(flags *rootFlags) (*cache.FileCache, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Cache.Backend != config.CacheFile {
		return nil, errors.New(errors.CodeBadRequest, "cache commands only support the file backend (configured: %s)", cfg.Cache.Backend)
	}
	return cache.NewFileCache(cfg.Cache.Dir)
}

func newCacheClearCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached renders",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := fileCache(flags)
			if err != nil {
				return err
			}
			defer fc.Close()

			removed, err := fc.Clear(cmd.Context())
			if err != nil {
				return err
			}
			printSuccess("Cleared %d cached renders", removed)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
}

func newCacheInfoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache location and usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := fileCache(flags)
			if err != nil {
				return err
			}
			defer fc.Close()

			count, bytes, err := fc.Stats(cmd.Context())
			if err != nil {
				return err
			}
			printKeyValue("Directory", fc.Dir())
			printKeyValue("Entries", fmt.Sprintf("%d", count))
			printKeyValue("Size", formatBytes(bytes))
			return nil
		},
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
