package paramfetch

import (
	"bytes"
	"context"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/paramfetch/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

// digestOf computes the manifest-format digest of content: blake2b-512, hex,
// truncated to 32 characters.
func digestOf(content []byte) string {
	sum := blake2b.Sum512(content)
	return hex.EncodeToString(sum[:])[:digestHexLen]
}

func writeTestFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.params")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestVerifyFile(t *testing.T) {
	content := []byte("proof parameter bytes")
	path := writeTestFile(t, content)
	info := ParameterData{Digest: digestOf(content)}

	require.NoError(t, verifyFile(context.Background(), path, info, false))
}

func TestVerifyFileMismatch(t *testing.T) {
	path := writeTestFile(t, []byte("corrupted bytes"))
	info := ParameterData{Digest: digestOf([]byte("expected bytes"))}

	err := verifyFile(context.Background(), path, info, false)
	require.ErrorIs(t, err, ErrChecksumMismatch)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
}

func TestVerifyFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.params")
	info := ParameterData{Digest: digestOf([]byte("anything"))}

	err := verifyFile(context.Background(), path, info, false)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrChecksumMismatch)
}

func TestVerifyFileTrustBypass(t *testing.T) {
	path := writeTestFile(t, []byte("corrupted bytes"))
	info := ParameterData{Digest: digestOf([]byte("expected bytes"))}

	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf))
	defer logger.Set(zerolog.Nop())

	require.NoError(t, verifyFile(context.Background(), path, info, true))
	assert.Contains(t, buf.String(), "warn")
	assert.Contains(t, buf.String(), "TRUST_PARAMS")
}

func TestVerifyFileCancelled(t *testing.T) {
	content := bytes.Repeat([]byte("x"), 4<<20)
	path := writeTestFile(t, content)
	info := ParameterData{Digest: digestOf(content)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, verifyFile(ctx, path, info, false), context.Canceled)
}
