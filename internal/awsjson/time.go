package awsjson

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	smithytime "github.com/aws/smithy-go/time"
)

// Time is a JSON 1.1 timestamp: epoch seconds on the wire, fractional for
// sub-second precision.
type Time time.Time

// Std returns the value as a standard time.Time.
func (t Time) Std() time.Time { return time.Time(t) }

func (t Time) IsZero() bool { return time.Time(t).IsZero() }

func (t Time) MarshalJSON() ([]byte, error) {
	// Millisecond precision, matching what the services emit. Going
	// through UnixMilli keeps the division exact in float64.
	secs := float64(time.Time(t).UnixMilli()) / 1000
	return []byte(strconv.FormatFloat(secs, 'f', -1, 64)), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("timestamp must be epoch seconds: %w", err)
	}
	secs, err := n.Float64()
	if err != nil {
		return fmt.Errorf("timestamp must be epoch seconds: %w", err)
	}
	*t = Time(smithytime.ParseEpochSeconds(secs).UTC())
	return nil
}

// NewTime converts a time.Time into a wire timestamp.
func NewTime(t time.Time) *Time {
	wt := Time(t)
	return &wt
}
