package model

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// ComplaintIDPrefix is the tracking prefix echoed to the client, the CRM
	// and both emails.
	ComplaintIDPrefix = "CHR"
	// BookingIDPrefix is the tracking prefix for test-drive bookings.
	BookingIDPrefix = "TD"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewTrackingID returns "<prefix>-<epoch millis>-<6 base36 chars>", e.g.
// CHR-1735689600000-4K7Q2Z. The suffix is not cryptographically secure; the
// ID is an opaque tracking token, not a credential.
func NewTrackingID(prefix string) string {
	var suffix [6]byte
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix[:])
}
