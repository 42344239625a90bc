package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const reminderTTL = 48 * time.Hour

// ReminderMarker records which appointments already had a reminder sent.
// Key format: reminder:<appointment_id>. Keys expire after the appointment
// window has long passed, so the set does not grow unbounded.
type ReminderMarker struct {
	client *redis.Client
}

// NewReminderMarker creates a ReminderMarker wrapping the given Redis client.
func NewReminderMarker(client *redis.Client) *ReminderMarker {
	return &ReminderMarker{client: client}
}

// AlreadySent reports whether a reminder for this appointment went out.
func (m *ReminderMarker) AlreadySent(ctx context.Context, appointmentID string) (bool, error) {
	n, err := m.client.Exists(ctx, m.key(appointmentID)).Result()
	if err != nil {
		return false, fmt.Errorf("reminder guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the reminder has been sent (expires after reminderTTL).
func (m *ReminderMarker) Mark(ctx context.Context, appointmentID string) error {
	return m.client.Set(ctx, m.key(appointmentID), "1", reminderTTL).Err()
}

func (m *ReminderMarker) key(appointmentID string) string {
	return fmt.Sprintf("reminder:%s", appointmentID)
}
