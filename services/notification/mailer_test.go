package notification

import (
	"strings"
	"testing"

	"roomly/models"
)

func TestRenderEmailSubjects(t *testing.T) {
	tests := []struct {
		kind        string
		wantSubject string
	}{
		{models.NotificationKindCreated, "Your reservation is confirmed"},
		{models.NotificationKindUpdated, "Your reservation was updated"},
		{models.NotificationKindCancelled, "Your reservation was cancelled"},
		{models.NotificationKindAdminAlert, "New reservation activity"},
		{"unknown", "Reservation notification"},
	}

	for _, tt := range tests {
		subject, body := RenderEmail(models.EmailPayload{
			Kind:          tt.kind,
			ResourceName:  "Boardroom",
			ReservationID: "rsv-42",
		})
		if subject != tt.wantSubject {
			t.Errorf("RenderEmail(%q) subject = %q, want %q", tt.kind, subject, tt.wantSubject)
		}
		if !strings.Contains(body, "Boardroom") || !strings.Contains(body, "rsv-42") {
			t.Errorf("RenderEmail(%q) body missing resource name or reference", tt.kind)
		}
	}
}
