package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Snapshot is the portable JSON form of the whole store: the session
// log plus the category registry. The layout matches the stores the
// original browser app wrote, so its exports load here unchanged.
type Snapshot struct {
	Logs       []LogEntry      `json:"logs"`
	Categories []CategoryEntry `json:"categories"`
}

// LogEntry is one committed session on the wire. Durations are integer
// milliseconds; the span list travels under the "sessions" key the
// original format used.
type LogEntry struct {
	ID          wireID      `json:"id"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	DurationMs  int64       `json:"duration"`
	Timestamp   wireTime    `json:"timestamp"`
	Spans       []SpanEntry `json:"sessions"`
}

// SpanEntry is one tracked interval inside a log entry.
type SpanEntry struct {
	Start      wireTime `json:"start"`
	End        wireTime `json:"end"`
	DurationMs int64    `json:"duration"`
}

// CategoryEntry is one registry entry on the wire.
type CategoryEntry struct {
	ID   wireID `json:"id"`
	Name string `json:"name"`
	Icon string `json:"iconName"`
}

// wireID is an entry id: a uuid string in our exports, a Date.now()
// number in the original app's. Both decode to the string form.
type wireID string

func (id *wireID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = wireID(n.String())
	return nil
}

// wireTime is a point in time: RFC 3339 in our exports, epoch
// milliseconds in the original app's span records.
type wireTime struct {
	time.Time
}

func (t wireTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parsing time %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("time must be RFC 3339 or epoch milliseconds: %w", err)
	}
	t.Time = time.UnixMilli(ms)
	return nil
}

// Decode reads a snapshot from r. Callers that want the degraded
// fallback on bad input go through DecodeOrFallback instead.
func Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}

// Encode writes the snapshot to w as indented JSON.
func Encode(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}
