package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordResolve(t *testing.T) {
	before := testutil.ToFloat64(ResolveTotal.WithLabelValues(ResultCacheHit))
	RecordResolve(ResultCacheHit)
	RecordResolve(ResultCacheHit)

	if got := testutil.ToFloat64(ResolveTotal.WithLabelValues(ResultCacheHit)); got != before+2 {
		t.Errorf("resolve hit counter = %v, want %v", got, before+2)
	}
}

func TestRecordFetch(t *testing.T) {
	before := testutil.ToFloat64(FetchTotal.WithLabelValues(FetchKindDiscovery, ResultError))
	RecordFetch(FetchKindDiscovery, ResultError, 0.25)

	if got := testutil.ToFloat64(FetchTotal.WithLabelValues(FetchKindDiscovery, ResultError)); got != before+1 {
		t.Errorf("fetch counter = %v, want %v", got, before+1)
	}
}

func TestRecordConversionAndError(t *testing.T) {
	before := testutil.ToFloat64(ConversionTotal.WithLabelValues("rsa", ResultError))
	RecordConversion("rsa", ResultError)
	if got := testutil.ToFloat64(ConversionTotal.WithLabelValues("rsa", ResultError)); got != before+1 {
		t.Errorf("conversion counter = %v, want %v", got, before+1)
	}

	before = testutil.ToFloat64(ErrorsTotal.WithLabelValues("FetchFailed"))
	RecordError("FetchFailed")
	if got := testutil.ToFloat64(ErrorsTotal.WithLabelValues("FetchFailed")); got != before+1 {
		t.Errorf("error counter = %v, want %v", got, before+1)
	}
}
