package domain

import (
	"time"

	"github.com/google/uuid"
)

// Statistics is the admin-facing platform snapshot.
type Statistics struct {
	TotalSites       int               `json:"total_sites"`
	TotalBusinesses  int               `json:"total_businesses"`
	BusinessesBySite map[uuid.UUID]int `json:"businesses_by_site"`
	SitesByVertical  map[string]int    `json:"sites_by_vertical"`
	LastUpdated      time.Time         `json:"last_updated"`
}
