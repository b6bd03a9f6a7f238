package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arxos/opencubes/internal/support/logger"
	"github.com/arxos/opencubes/pkg/cubeerr"
)

var (
	// Version information (set during build)
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "opencubes",
	Short: "Enumerate distinct polycubes up to rotation",
	Long: `opencubes counts and caches distinct polycubes of size N, considered
equivalent under the 24 proper rotations of the cube.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var rootLogLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		switch rootLogLevel {
		case "debug":
			logger.SetLevel(logger.DEBUG)
		case "warn", "warning":
			logger.SetLevel(logger.WARN)
		case "error":
			logger.SetLevel(logger.ERROR)
		case "info", "":
		default:
			logger.Warn("unrecognised --log-level %q, keeping default", rootLogLevel)
		}
	}

	rootCmd.AddCommand(enumerateCmd)
	rootCmd.AddCommand(pcubeCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("opencubes %s (built %s, commit %s)\n", Version, BuildTime, Commit)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportAndExit(err)
	}
}

// reportAndExit maps any returned error to exit code 1, printing file and
// position when the error carries them (pkg/cubeerr.PositionedError).
func reportAndExit(err error) {
	var perr *cubeerr.PositionedError
	if errors.As(err, &perr) {
		fmt.Fprintln(os.Stderr, "error:", perr.Error())
	} else {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(1)
}
