package model

import "time"

// Metadata is embedded by stored records. Timestamps are in the application timezone.
type Metadata struct {
	CreatedAt time.Time `field:"created_at" json:"createdAt"`
}
