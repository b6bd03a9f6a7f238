package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arxos/opencubes/internal/pcubeio"
	"github.com/arxos/opencubes/internal/polycube"
	"github.com/arxos/opencubes/pkg/cubeerr"
)

var pcubeCmd = &cobra.Command{
	Use:   "pcube",
	Short: "Inspect, validate, and convert .pcube cache files",
}

// --- validate ---

var (
	validateNoUniqueness bool
	validateNoCanonical  bool
	validateExpectN      int
	validateNoInMemory   bool
)

var pcubeValidateCmd = &cobra.Command{
	Use:   "validate PATH",
	Short: "Validate a .pcube file's structure, canonical form, and uniqueness",
	Args:  cobra.ExactArgs(1),
	RunE:  runPCubeValidate,
}

func init() {
	pcubeValidateCmd.Flags().BoolVar(&validateNoUniqueness, "no-uniqueness", false, "skip the duplicate-cube check")
	pcubeValidateCmd.Flags().BoolVar(&validateNoCanonical, "no-canonical", false, "skip the canonical-form check")
	pcubeValidateCmd.Flags().IntVarP(&validateExpectN, "n", "n", 0, "expect every cube to have exactly N filled cells (0 disables)")
	pcubeValidateCmd.Flags().BoolVar(&validateNoInMemory, "no-in-memory", false, "stream records instead of reading the whole file first")
	pcubeCmd.AddCommand(pcubeValidateCmd)
	pcubeCmd.AddCommand(pcubeConvertCmd)
	pcubeCmd.AddCommand(pcubeInfoCmd)
}

func runPCubeValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	r, err := pcubeio.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	seen := make(map[polycube.PointList]struct{})
	n := 0

	for {
		raw, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		n++

		points, dim, err := polycube.FromRawPCube(raw)
		if err != nil {
			return cubeerr.Malformed(cubeerr.CodeZeroDimension, path, int64(n), err.Error(), nil)
		}

		if validateExpectN != 0 && points.Count != validateExpectN {
			return cubeerr.Malformed(cubeerr.CodeLengthMismatch, path, int64(n),
				fmt.Sprintf("cube %d has %d cells, expected %d", n, points.Count, validateExpectN), nil)
		}

		if !validateNoCanonical {
			canon := polycube.Canonical(points, dim, points.Count)
			if !canon.Equal(points) {
				return cubeerr.CacheMismatch(cubeerr.CodeNotCanonical, path,
					fmt.Sprintf("cube %d is not in canonical orientation", n))
			}
		}

		if !validateNoUniqueness {
			if _, dup := seen[points]; dup {
				return cubeerr.CacheMismatch(cubeerr.CodeDuplicateCube, path,
					fmt.Sprintf("cube %d duplicates an earlier entry", n))
			}
			if !validateNoInMemory {
				seen[points] = struct{}{}
			}
		}
	}

	fmt.Printf("%s: %d cubes, valid\n", path, n)
	return nil
}

// --- convert ---

var (
	convertCompression  string
	convertCanonicalize bool
	convertOut          string
)

var pcubeConvertCmd = &cobra.Command{
	Use:   "convert PATH...",
	Short: "Re-encode one or more .pcube files, optionally re-compressing or canonicalising",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPCubeConvert,
}

func init() {
	pcubeConvertCmd.Flags().StringVarP(&convertCompression, "compression", "z", "none", "output compression: none or gzip")
	pcubeConvertCmd.Flags().BoolVar(&convertCanonicalize, "canonicalize", false, "re-canonicalise every cube before writing")
	pcubeConvertCmd.Flags().StringVarP(&convertOut, "output", "o", "", "output path (required)")
}

func runPCubeConvert(cmd *cobra.Command, args []string) error {
	if convertOut == "" {
		return fmt.Errorf("pcube convert: --output is required")
	}
	compression, err := pcubeio.ParseCompression(convertCompression)
	if err != nil {
		return err
	}

	var all []*polycube.RawPCube
	canonical := true
	for _, path := range args {
		cubes, wasCanonical, _, err := pcubeio.ReadAll(path)
		if err != nil {
			return err
		}
		canonical = canonical && wasCanonical
		all = append(all, cubes...)
	}

	if convertCanonicalize {
		for i, raw := range all {
			points, dim, err := polycube.FromRawPCube(raw)
			if err != nil {
				return err
			}
			canon := polycube.Canonical(points, dim, points.Count)
			all[i] = canon.ToRawPCube()
		}
		canonical = true
	}

	if err := pcubeio.WriteFile(convertOut, canonical, compression, all); err != nil {
		return err
	}
	fmt.Printf("wrote %d cubes to %s\n", len(all), convertOut)
	return nil
}

// --- info ---

var pcubeInfoCmd = &cobra.Command{
	Use:   "info PATH...",
	Short: "Print header metadata for one or more .pcube files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPCubeInfo,
}

func runPCubeInfo(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		r, err := pcubeio.Open(path)
		if err != nil {
			return err
		}

		n, known := r.Len()
		sizeDesc := "unknown (streamed until EOF)"
		if known {
			sizeDesc = fmt.Sprintf("%d", n)
		}
		fmt.Printf("%s:\n  canonical: %v\n  compression: %s\n  declared count: %s\n",
			path, r.Canonical(), r.Compression(), sizeDesc)
		r.Close()
	}
	return nil
}
