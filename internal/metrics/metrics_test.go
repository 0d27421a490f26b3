package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderCountsProviderAttempts(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("nhle", 20*time.Millisecond, nil)
	r.RecordProviderAttempt("nhle", 30*time.Millisecond, errors.New("boom"))

	if got := r.ProviderCalls("nhle"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := r.ProviderErrors("nhle"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := r.Snapshot("nhle").LastCallLatency; got != 30*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %v", got)
	}
}

func TestRecorderRateLimit(t *testing.T) {
	r := NewRecorder()

	r.RecordRateLimit("nhle", 2*time.Second)

	if got := r.RateLimitHits("nhle"); got != 1 {
		t.Fatalf("expected 1 hit, got %d", got)
	}
	if got := r.Snapshot("nhle").LastRetryAfter; got != 2*time.Second {
		t.Fatalf("expected retry-after stored, got %v", got)
	}
}

func TestRecorderAnomalousTies(t *testing.T) {
	r := NewRecorder()

	r.RecordAnomalousTie()
	r.RecordAnomalousTie()

	if got := r.AnomalousTies(); got != 2 {
		t.Fatalf("expected 2 ties, got %d", got)
	}
}

func TestRecorderDatasetBuilt(t *testing.T) {
	r := NewRecorder()

	r.RecordDatasetBuilt(2624)

	if got := r.DatasetRecords(); got != 2624 {
		t.Fatalf("expected 2624 records, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder

	r.RecordProviderAttempt("nhle", time.Millisecond, nil)
	r.RecordRateLimit("nhle", time.Second)
	r.RecordAnomalousTie()
	r.RecordDatasetBuilt(1)
	r.RecordPipelineCycle(time.Millisecond, nil)
	r.RecordHTTPRequest("GET", "/dataset", 200, time.Millisecond)

	if r.AnomalousTies() != 0 || r.ProviderCalls("nhle") != 0 {
		t.Fatal("nil recorder must report zeros")
	}
}
