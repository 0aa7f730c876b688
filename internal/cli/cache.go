package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the verification result cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached verification results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		cfg.Cache.Enabled = true // clearing works even when requests skip the cache

		_, results, _, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		if err := results.Clear(); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}

		fmt.Println("Cache cleared.")
		return nil
	},
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show result cache settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		fmt.Printf("Enabled:  %v\n", cfg.Cache.Enabled)
		fmt.Printf("TTL:      %s\n", cfg.Cache.TTL)
		fmt.Printf("Dir:      %s\n", cacheDirDisplay(cfg.Cache.Dir))
		fmt.Printf("Max size: %d MB (evicted by the underlying store)\n", cfg.Cache.MaxSizeMB)
		return nil
	},
}

func cacheDirDisplay(dir string) string {
	if dir == "" {
		return "~/.veridex/cache"
	}
	return dir
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
}
