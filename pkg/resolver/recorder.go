package resolver

import (
	"errors"
	"time"

	resolvererrors "github.com/jwks-resolver/jwks-resolver/pkg/errors"
	"github.com/jwks-resolver/jwks-resolver/pkg/metrics"
)

// recorder forwards to the metrics package when enabled
type recorder struct {
	enabled bool
}

func (r recorder) resolve(result string) {
	if r.enabled {
		metrics.RecordResolve(result)
	}
}

func (r recorder) fetch(kind string, err error, started time.Time) {
	if !r.enabled {
		return
	}

	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
		r.error(err)
	}
	metrics.RecordFetch(kind, result, time.Since(started).Seconds())
}

func (r recorder) conversion(path string, err error) {
	if !r.enabled {
		return
	}

	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.RecordConversion(path, result)
}

func (r recorder) error(err error) {
	errType := "Unknown"
	var typed *resolvererrors.Error
	if errors.As(err, &typed) {
		errType = string(typed.Type)
	}
	metrics.RecordError(errType)
}
