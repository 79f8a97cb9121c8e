package task

import (
	"encoding/json"
	"strings"
	"time"
)

const (
	// LayoutMinute is the persisted precision for item timestamps.
	LayoutMinute = "2006-01-02 15:04"
	// LayoutDay is the persisted precision for list creation dates.
	LayoutDay = "2006-01-02"
)

// Timestamp is a minute-precision instant. The persisted form drops seconds,
// so the in-memory value is truncated to keep save/load round trips lossless.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Minute)}
}

func ParseTimestamp(v string) (Timestamp, error) {
	t, err := time.ParseInLocation(LayoutMinute, v, time.Local)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Time: t}, nil
}

func (t Timestamp) String() string {
	return t.Format(LayoutMinute)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if strings.TrimSpace(v) == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(v)
	if err != nil {
		return err
	}
	t.Time = parsed.Time
	return nil
}

// DateStamp is a day-precision date used for list creation metadata.
type DateStamp struct {
	time.Time
}

func NewDateStamp(t time.Time) DateStamp {
	y, m, d := t.Date()
	return DateStamp{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func ParseDateStamp(v string) (DateStamp, error) {
	t, err := time.ParseInLocation(LayoutDay, v, time.Local)
	if err != nil {
		return DateStamp{}, err
	}
	return DateStamp{Time: t}, nil
}

func (d DateStamp) String() string {
	return d.Format(LayoutDay)
}

func (d DateStamp) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.String())
}

func (d *DateStamp) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if strings.TrimSpace(v) == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDateStamp(v)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}
