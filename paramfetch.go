package paramfetch

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

const (
	// defaultGateway serves parameter files by content id.
	defaultGateway = "https://proofs.filecoin.io/ipfs/"

	// paramDirName is the cache subdirectory external proof tooling expects
	// under the data directory.
	paramDirName = "filecoin-proof-parameters"

	dirEnv     = "FIL_PROOFS_PARAMETER_CACHE"
	gatewayEnv = "IPFS_GATEWAY"
	trustEnv   = "TRUST_PARAMS"
)

// defaultManifest is the parameter manifest bundled with the module, used by
// GetParamsDefault when the caller does not supply one.
//
//go:embed parameters.json
var defaultManifest []byte

// DefaultManifest returns a copy of the bundled parameter manifest JSON.
func DefaultManifest() []byte {
	return append([]byte(nil), defaultManifest...)
}

// SectorSizeOpt selects which manifest entries GetParams materializes on disk.
type SectorSizeOpt struct {
	mode selectMode
	size uint64
}

type selectMode uint8

const (
	selectAll selectMode = iota
	selectKeys
	selectSize
)

// All selects every proving parameter file and verification key.
func All() SectorSizeOpt { return SectorSizeOpt{mode: selectAll} }

// Keys selects verification keys only.
func Keys() SectorSizeOpt { return SectorSizeOpt{mode: selectKeys} }

// Size selects the proving parameters for the given sector size, plus every
// verification key; keys are size-independent and always needed.
func Size(sectorSize uint64) SectorSizeOpt {
	return SectorSizeOpt{mode: selectSize, size: sectorSize}
}

// Config carries the resolved settings for one GetParams invocation. It is
// built once by NewConfig and passed through explicitly; apart from the
// SetProofsParameterCacheDirEnv shim, nothing reads or writes the environment
// after construction.
type Config struct {
	// DataDir is the node data directory the cache lives under.
	DataDir string

	// GatewayURL is the base URL the content id is appended to.
	GatewayURL string

	// TrustParams skips digest verification entirely. Never enable it in
	// production; every bypassed check logs a warning.
	TrustParams bool

	// MaxConcurrent bounds the number of fetch-and-verify workers in flight.
	MaxConcurrent int64
}

// Option modifies a Config built by NewConfig.
type Option func(*Config) error

// WithGateway overrides the gateway base URL.
func WithGateway(url string) Option {
	return func(cfg *Config) error {
		cfg.GatewayURL = url
		return nil
	}
}

// WithTrustParams toggles the digest verification bypass.
func WithTrustParams(trust bool) Option {
	return func(cfg *Config) error {
		cfg.TrustParams = trust
		return nil
	}
}

// WithMaxConcurrent overrides the bound on in-flight workers.
func WithMaxConcurrent(n int64) Option {
	return func(cfg *Config) error {
		if n <= 0 {
			return errors.New("max concurrent workers must be positive")
		}
		cfg.MaxConcurrent = n
		return nil
	}
}

// NewConfig resolves the configuration for dataDir. The environment is read
// here and only here: IPFS_GATEWAY overrides the gateway and TRUST_PARAMS set
// to the literal "1" enables the verification bypass. Options are applied
// last and win over the environment.
func NewConfig(dataDir string, opts ...Option) (Config, error) {
	cfg := Config{
		DataDir:       dataDir,
		GatewayURL:    defaultGateway,
		TrustParams:   os.Getenv(trustEnv) == "1",
		MaxConcurrent: defaultMaxConcurrent,
	}
	if gw := os.Getenv(gatewayEnv); gw != "" {
		cfg.GatewayURL = gw
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// ParamDir returns the parameter cache directory for dataDir: the value of
// FIL_PROOFS_PARAMETER_CACHE if set, else a fixed subdirectory of dataDir.
func ParamDir(dataDir string) string {
	if dir := os.Getenv(dirEnv); dir != "" {
		return dir
	}
	return filepath.Join(dataDir, paramDirName)
}

// SetProofsParameterCacheDirEnv exports the resolved cache directory to
// FIL_PROOFS_PARAMETER_CACHE. The native proof libraries locate parameter
// files through that variable alone, so it must be set before they are
// loaded; calling this again with the same dataDir is a no-op.
func SetProofsParameterCacheDirEnv(dataDir string) {
	os.Setenv(dirEnv, ParamDir(dataDir))
}
