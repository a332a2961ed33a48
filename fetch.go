package paramfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/consensys/paramfetch/logger"
)

// fetchClient deliberately carries no timeout: parameter files are large and
// slow mirrors are tolerated. The bounded retry loop in fetchParams is the
// only circuit breaker.
var fetchClient = &http.Client{}

var (
	fetchMaxRetries      uint64 = 10
	fetchInitialInterval        = 500 * time.Millisecond
)

// fetchParams downloads the file identified by info.Cid from the configured
// gateway into path. Transport failures, non-success statuses and truncated
// bodies are retried with jittered exponential backoff; local filesystem
// failures are not.
func fetchParams(ctx context.Context, cfg Config, path string, info ParameterData) error {
	url := cfg.GatewayURL + info.Cid
	log := logger.Logger()
	log.Debug().Str("file", path).Str("url", url).Msg("fetching parameter file")

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = fetchInitialInterval

	return backoff.RetryNotify(
		func() error {
			return fetchParamsOnce(ctx, url, path)
		},
		backoff.WithContext(backoff.WithMaxRetries(bo, fetchMaxRetries), ctx),
		func(err error, next time.Duration) {
			log.Debug().Err(err).Dur("retry_in", next).Str("file", path).Msg("fetch failed, retrying")
		},
	)
}

func fetchParamsOnce(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	resp, err := fetchClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetching %s: unexpected status %q", url, resp.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		// retrying will not fix a filesystem failure
		return backoff.Permanent(err)
	}
	written, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if resp.ContentLength >= 0 && written != resp.ContentLength {
		return fmt.Errorf("fetching %s: truncated body (%d of %d bytes)", url, written, resp.ContentLength)
	}
	return nil
}
