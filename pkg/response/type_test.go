package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"duedate-service/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("Date marshaled as %s", b)
	}
}

func TestTimeOfDayMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	b, err := json.Marshal(response.TimeOfDay(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling TimeOfDay: %v", err)
	}
	if string(b) != `"20:00"` {
		t.Errorf("TimeOfDay marshaled as %s", b)
	}
}
