package main

import (
	"fmt"

	"github.com/consensys/paramfetch"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "download and verify the selected parameter files",
	RunE:  cmdFetch,
}

var (
	fManifest      string
	fSectorSize    uint64
	fKeysOnly      bool
	fGateway       string
	fTrust         bool
	fMaxConcurrent int64
)

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fManifest, "manifest", "", "path to an alternate parameter manifest (default: bundled manifest)")
	fetchCmd.Flags().Uint64Var(&fSectorSize, "sector-size", 0, "fetch proving parameters for this sector size only (verification keys are always fetched)")
	fetchCmd.Flags().BoolVar(&fKeysOnly, "keys-only", false, "fetch verification keys only")
	fetchCmd.Flags().StringVar(&fGateway, "gateway", "", "gateway base URL (default: IPFS_GATEWAY or the public gateway)")
	fetchCmd.Flags().BoolVar(&fTrust, "trust", false, "skip digest verification (do not use in production)")
	fetchCmd.Flags().Int64Var(&fMaxConcurrent, "max-concurrent", 0, "bound on concurrent downloads (default 16)")
}

func cmdFetch(cmd *cobra.Command, args []string) error {
	opt, err := selection(cmd, fKeysOnly, fSectorSize)
	if err != nil {
		return err
	}

	var opts []paramfetch.Option
	if fGateway != "" {
		opts = append(opts, paramfetch.WithGateway(fGateway))
	}
	if fTrust {
		opts = append(opts, paramfetch.WithTrustParams(true))
	}
	if fMaxConcurrent > 0 {
		opts = append(opts, paramfetch.WithMaxConcurrent(fMaxConcurrent))
	}

	paramfetch.SetProofsParameterCacheDirEnv(fDataDir)

	manifest, err := readManifest(fManifest)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if manifest == nil {
		err = paramfetch.GetParamsDefault(ctx, fDataDir, opt, opts...)
	} else {
		err = paramfetch.GetParams(ctx, fDataDir, manifest, opt, opts...)
	}
	if err != nil {
		return err
	}
	fmt.Println("parameter files are up to date in", paramfetch.ParamDir(fDataDir))
	return nil
}
