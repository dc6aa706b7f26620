package models

import (
	"testing"
	"time"
)

func TestNotificationVisible(t *testing.T) {
	t.Parallel()

	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	cases := []struct {
		name         string
		notification Notification
		want         bool
	}{
		{"active without expiry", Notification{IsActive: true}, true},
		{"active before expiry", Notification{IsActive: true, ExpiresAt: &future}, true},
		{"active past expiry", Notification{IsActive: true, ExpiresAt: &past}, false},
		{"inactive", Notification{IsActive: false}, false},
		{"inactive before expiry", Notification{IsActive: false, ExpiresAt: &future}, false},
	}
	for _, testCase := range cases {
		if got := testCase.notification.Visible(now); got != testCase.want {
			t.Fatalf("%s: Visible = %v, want %v", testCase.name, got, testCase.want)
		}
	}
}

func TestValidNotificationType(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{NotificationTypeGeneral, NotificationTypeImportant, NotificationTypeDeadline} {
		if !ValidNotificationType(valid) {
			t.Fatalf("expected %q to be valid", valid)
		}
	}
	if ValidNotificationType("urgent") {
		t.Fatal("expected unknown type to be rejected")
	}
}
