package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan represents a subscription tier. Plans are reference data: seeded at
// startup and read-only afterwards.
type Plan struct {
	ID        uuid.UUID // Unique identifier for the plan.
	Name      string    // Tier name, e.g. "Bronze".
	Price     string    // Display price, e.g. "$29/month".
	Features  []string  // Marketing feature list for the tier.
	CreatedAt time.Time
}
