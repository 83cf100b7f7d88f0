package analytics

import (
	"context"
	"sort"
	"time"

	"collabhub/internal/logging"
	"collabhub/internal/store"
	"collabhub/internal/store/sqlitekv"
)

// EventSink persists activity events, satisfied by *sqlitekv.DB.
type EventSink interface {
	PutEvent(ctx context.Context, ts time.Time, typ string, payload any) error
}

// Recorder journals committed store changes.
type Recorder struct {
	sink EventSink
	now  func() time.Time
}

func NewRecorder(sink EventSink, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{sink: sink, now: now}
}

type changePayload struct {
	CampaignID    string   `json:"campaignId,omitempty"`
	InfluencerIDs []string `json:"influencerIds,omitempty"`
	Version       uint64   `json:"version"`
}

// Record writes c as an event typed by its kind. Failures are logged; the
// store mutation has already happened.
func (r *Recorder) Record(c store.Change) {
	p := changePayload{CampaignID: c.CampaignID, InfluencerIDs: c.InfluencerIDs, Version: c.Version}
	if err := r.sink.PutEvent(context.Background(), r.now().UTC(), string(c.Kind), p); err != nil {
		logging.Error("activity_record_error", map[string]any{"kind": string(c.Kind), "error": err.Error()})
	}
}

// Attach subscribes the recorder to s.
func (r *Recorder) Attach(s *store.Store) (cancel func()) { return s.Subscribe(r.Record) }

// HourlyActivity aggregates events into per-hour buckets keyed by type.
func HourlyActivity(events []sqlitekv.Event) map[time.Time]map[string]int {
	buckets := make(map[time.Time]map[string]int)
	for _, e := range events {
		ts := e.TS.UTC()
		key := time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), 0, 0, 0, time.UTC)
		if _, ok := buckets[key]; !ok {
			buckets[key] = make(map[string]int)
		}
		buckets[key][e.Type]++
	}
	return buckets
}

// SortedBucketKeys returns sorted hour keys.
func SortedBucketKeys(m map[time.Time]map[string]int) []time.Time {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}
