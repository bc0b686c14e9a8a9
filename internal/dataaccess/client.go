package dataaccess

import (
	"context"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/nescli/nescli/internal/utils"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTimeout  = 30 * time.Second
	DefaultRetryMax = 3
)

type ClientOptions struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.RetryMax <= 0 {
		o.RetryMax = DefaultRetryMax
	}
	if o.RetryWaitMin <= 0 {
		o.RetryWaitMin = time.Second
	}
	if o.RetryWaitMax < o.RetryWaitMin {
		o.RetryWaitMax = 10 * o.RetryWaitMin
	}
	return o
}

// Client downloads remote resources with automatic retries.
type Client struct {
	http *http.Client
}

func NewClient(opts ClientOptions) *Client {
	return &Client{http: newRetryableHttpClient(opts.withDefaults())}
}

// retryablehttp gives us automatic retries with exponential backoff.
func newRetryableHttpClient(opts ClientOptions) *http.Client {
	httpClient := retryablehttp.NewClient()
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	httpClient.CheckRetry = retryPolicy
	httpClient.Backoff = retryablehttp.DefaultBackoff
	httpClient.RetryMax = opts.RetryMax
	httpClient.RetryWaitMin = opts.RetryWaitMin
	httpClient.RetryWaitMax = opts.RetryWaitMax
	httpClient.HTTPClient.Timeout = opts.Timeout
	httpClient.Logger = NewLeveledLogger()
	// HTTP requests are logged at DEBUG level.
	httpClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, retryNumber int) {
		if utils.IsDebugLogLevel() {
			dump, err := httputil.DumpRequestOut(req, false)
			if err != nil {
				log.Err(err).Msg("Failed to dump request")
			}
			log.Debug().Int("retry", retryNumber).Msgf("Request %s %s\n%s", req.Method, req.URL, dump)
		}
	}
	httpClient.ResponseLogHook = func(_ retryablehttp.Logger, res *http.Response) {
		if utils.IsDebugLogLevel() {
			dump, err := httputil.DumpResponse(res, false)
			if err != nil {
				log.Err(err).Msg("Failed to dump response")
			}
			log.Debug().Msgf("Response %s\n%s", res.Status, dump)
		}
	}
	return httpClient.StandardClient()
}

// LeveledLogger forwards retryablehttp logs to zerolog.
type LeveledLogger struct{}

var _ retryablehttp.LeveledLogger = (*LeveledLogger)(nil)

func NewLeveledLogger() *LeveledLogger {
	return &LeveledLogger{}
}

func (l *LeveledLogger) Error(msg string, keysAndValues ...interface{}) {
	log.Error().Fields(keysAndValues).Msg(msg)
}

func (l *LeveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *LeveledLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Info().Fields(keysAndValues).Msg(msg)
}

func (l *LeveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	log.Warn().Fields(keysAndValues).Msg(msg)
}

func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	shouldRetry, err := retryablehttp.ErrorPropagatedRetryPolicy(ctx, resp, err)
	// Only idempotent requests are retried after a response error
	if err != nil && resp != nil && resp.Request != nil && resp.Request.Method != http.MethodGet {
		shouldRetry = false
	}
	return shouldRetry, nil
}
