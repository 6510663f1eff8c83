package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewAutomationID assigns an automation identifier: creation timestamp in
// milliseconds plus a random suffix. Sortable by creation time, collision
// resistant across concurrent requests.
func NewAutomationID(now time.Time) string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}

// NormalizeAddress lowercases an address so map keys and DB lookups are
// case-insensitive over the hex digits.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}
