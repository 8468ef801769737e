package appointment

import (
	"testing"

	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
)

func TestStatusActive(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusScheduled, true},
		{StatusWaiting, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		if got := tt.status.Active(); got != tt.want {
			t.Errorf("%s.Active() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to Status
		wantCode string
	}{
		{"waiting to scheduled", StatusWaiting, StatusScheduled, ""},
		{"waiting to cancelled", StatusWaiting, StatusCancelled, ""},
		{"waiting to completed", StatusWaiting, StatusCompleted, "invalid_transition"},
		{"waiting to no show", StatusWaiting, StatusNoShow, "invalid_transition"},
		{"scheduled to scheduled", StatusScheduled, StatusScheduled, ""},
		{"scheduled to completed", StatusScheduled, StatusCompleted, ""},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, ""},
		{"scheduled to no show", StatusScheduled, StatusNoShow, ""},
		{"scheduled to waiting", StatusScheduled, StatusWaiting, "invalid_transition"},
		{"completed is terminal", StatusCompleted, StatusScheduled, "invalid_transition"},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, "invalid_transition"},
		{"no show is terminal", StatusNoShow, StatusCompleted, "invalid_transition"},
		{"unknown target", StatusScheduled, Status("Booked"), "invalid_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("CanTransition(%s, %s) = %v, want nil", tt.from, tt.to, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("CanTransition(%s, %s) = nil, want %q", tt.from, tt.to, tt.wantCode)
			}
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Fatalf("CanTransition(%s, %s) = %v, want code %q", tt.from, tt.to, err, tt.wantCode)
			}
		})
	}
}
