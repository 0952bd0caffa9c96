package response

import (
	"encoding/json"
	"time"
)

// Formats used by the wire types below.
const (
	DateFormat      = "2006-01-02"
	TimeOfDayFormat = "15:04"
)

// Response messages and codes.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a calendar day that marshals as DateFormat. It formats in the
// value's own location, so dates resolved against an injected calendar are
// not shifted by the server's local timezone.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// TimeOfDay is a clock time that marshals as TimeOfDayFormat, again in the
// value's own location.
type TimeOfDay time.Time

// MarshalJSON implements json.Marshaler for TimeOfDay.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(TimeOfDayFormat))
}
