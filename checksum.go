package paramfetch

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/consensys/paramfetch/logger"
	"golang.org/x/crypto/blake2b"
)

// ErrChecksumMismatch reports a parameter file whose content does not hash to
// the digest recorded in the manifest.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// digestHexLen is the number of hex characters of the blake2b-512 sum kept in
// the manifest's digest field (16 bytes of hash output). The truncation is
// part of the manifest format.
const digestHexLen = 32

// verifyFile checks that the file at path hashes to the digest in info. A
// missing file surfaces as fs.ErrNotExist so the caller can tell "needs
// fetch" from "present but corrupt". When trust is set the check is skipped
// and a warning is logged.
func verifyFile(ctx context.Context, path string, info ParameterData, trust bool) error {
	log := logger.Logger()

	if trust {
		log.Warn().Str("file", path).Msg("TRUST_PARAMS set, assuming parameter file is valid; do not use in production")
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h, err := blake2b.New512(nil)
	if err != nil {
		return err
	}
	if err := hashStream(ctx, h, f); err != nil {
		return fmt.Errorf("hashing %s: %w", path, err)
	}

	sum := hex.EncodeToString(h.Sum(nil))[:digestHexLen]
	if sum != info.Digest {
		return fmt.Errorf("%w in parameter file %s (%s != %s)", ErrChecksumMismatch, path, sum, info.Digest)
	}
	log.Debug().Str("file", path).Msg("parameter file is ok")
	return nil
}

// hashStream feeds r through h chunk by chunk. Parameter files run to several
// gigabytes, so the content is never held in memory, and the context is
// checked between chunks so a cancelled invocation stops hashing promptly.
func hashStream(ctx context.Context, h hash.Hash, r io.Reader) error {
	buf := make([]byte, 1<<20)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
