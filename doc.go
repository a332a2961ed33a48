// Package paramfetch maintains a local, integrity-verified cache of the
// Groth16 parameter files (proving parameters and verification keys) consumed
// by the Filecoin proving subsystem.
//
// Parameter files are identified by a JSON manifest mapping file names to a
// content id, a truncated blake2b digest and a sector size. GetParams ensures
// every selected file is present in the cache directory and matches its
// digest, downloading missing or corrupt files from an IPFS gateway with
// retries, and verifying them again after download. Files that already verify
// are never re-fetched.
//
// The cache location defaults to <data_dir>/filecoin-proof-parameters and can
// be overridden with the FIL_PROOFS_PARAMETER_CACHE environment variable;
// SetProofsParameterCacheDirEnv exports the resolved location back to the
// environment for native proof libraries that read it directly.
package paramfetch
