package main

import (
	"fmt"

	"github.com/consensys/paramfetch"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "verify the selected parameter files without fetching",
	RunE:  cmdCheck,
}

var (
	fCheckManifest   string
	fCheckSectorSize uint64
	fCheckKeysOnly   bool
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&fCheckManifest, "manifest", "", "path to an alternate parameter manifest (default: bundled manifest)")
	checkCmd.Flags().Uint64Var(&fCheckSectorSize, "sector-size", 0, "check proving parameters for this sector size only (verification keys are always checked)")
	checkCmd.Flags().BoolVar(&fCheckKeysOnly, "keys-only", false, "check verification keys only")
}

func cmdCheck(cmd *cobra.Command, args []string) error {
	opt, err := selection(cmd, fCheckKeysOnly, fCheckSectorSize)
	if err != nil {
		return err
	}
	manifest, err := readManifest(fCheckManifest)
	if err != nil {
		return err
	}
	if manifest == nil {
		manifest = paramfetch.DefaultManifest()
	}
	if err := paramfetch.CheckParams(cmd.Context(), fDataDir, manifest, opt); err != nil {
		return err
	}
	fmt.Println("all selected parameter files verify in", paramfetch.ParamDir(fDataDir))
	return nil
}
