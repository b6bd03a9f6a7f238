package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arxos/opencubes/internal/orchestrator"
	"github.com/arxos/opencubes/internal/pcubeio"
	"github.com/arxos/opencubes/internal/support/config"
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate N",
	Short: "Count the distinct polycubes of size N",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnumerate,
}

var (
	enumerateNoParallelism bool
	enumerateNoCache       bool
	enumerateCacheCompress string
	enumerateMode          string
	enumerateCacheDir      string
)

func init() {
	enumerateCmd.Flags().BoolVar(&enumerateNoParallelism, "no-parallelism", false, "disable worker parallelism")
	enumerateCmd.Flags().BoolVar(&enumerateNoCache, "no-cache", false, "ignore and do not write cache files")
	enumerateCmd.Flags().StringVar(&enumerateCacheCompress, "cache-compression", "none", "cache compression: none or gzip")
	enumerateCmd.Flags().StringVar(&enumerateMode, "mode", "standard", "engine: standard, rotation-reduced, point-list, hashless")
	enumerateCmd.Flags().StringVar(&enumerateCacheDir, "cache-dir", "", "cache directory (default: config-resolved)")
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid N %q: must be a non-negative integer", args[0])
	}

	cfg, err := config.Resolve()
	if err != nil {
		return err
	}

	compression, err := pcubeio.ParseCompression(enumerateCacheCompress)
	if err != nil {
		return err
	}

	cacheDir := enumerateCacheDir
	if cacheDir == "" {
		cacheDir = cfg.CacheDir
	}

	workers := cfg.Workers
	if enumerateNoParallelism {
		workers = 1
	}

	opts := orchestrator.Options{
		N:                n,
		Mode:             orchestrator.Mode(enumerateMode),
		NoCache:          enumerateNoCache,
		NoParallelism:    enumerateNoParallelism,
		CacheCompression: compression,
		CacheDir:         cacheDir,
		Workers:          workers,
	}

	result, err := orchestrator.Enumerate(context.Background(), opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Unique polycubes found for N = %d: %d\n", n, result.Count)
	fmt.Fprintf(cmd.OutOrStdout(), "Computed in %s\n", result.Elapsed)
	return nil
}
