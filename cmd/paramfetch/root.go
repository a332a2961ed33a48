package main

import (
	"fmt"
	"os"

	"github.com/consensys/paramfetch"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "paramfetch",
	Short:   "manage the local Filecoin proof parameter cache",
	Version: paramfetch.Version.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a .env file may supply FIL_PROOFS_PARAMETER_CACHE, IPFS_GATEWAY
		// or TRUST_PARAMS
		_ = godotenv.Load()
	},
}

var fDataDir string

func init() {
	rootCmd.PersistentFlags().StringVar(&fDataDir, "dir", ".", "data directory the parameter cache lives under")
}

// selection translates the fetch/check flags into a SectorSizeOpt.
func selection(cmd *cobra.Command, keysOnly bool, sectorSize uint64) (paramfetch.SectorSizeOpt, error) {
	sizeSet := cmd.Flags().Changed("sector-size")
	if keysOnly && sizeSet {
		return paramfetch.SectorSizeOpt{}, fmt.Errorf("--keys-only and --sector-size are mutually exclusive")
	}
	switch {
	case keysOnly:
		return paramfetch.Keys(), nil
	case sizeSet:
		return paramfetch.Size(sectorSize), nil
	default:
		return paramfetch.All(), nil
	}
}

// readManifest loads the manifest from path, or returns nil to use the
// bundled default.
func readManifest(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	return os.ReadFile(path)
}
