package domain

import "github.com/google/uuid"

// Stream names shared with the admin enqueue side.
const (
	StreamPlacesImport = "stream:places:import"
	StreamPlacesDone   = "stream:places:done"
)

// PlacesImportJob asks the worker to populate listings for one
// (site, category, city) cell from the external places API.
type PlacesImportJob struct {
	JobID        uuid.UUID `json:"job_id"`
	SiteID       uuid.UUID `json:"site_id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CityID       uuid.UUID `json:"city_id"`
	CityName     string    `json:"city_name"`
	StateCode    string    `json:"state_code"`
}

// Query builds the places API text query for the job.
func (j *PlacesImportJob) Query() string {
	return j.CategoryName + " in " + j.CityName + ", " + j.StateCode
}

// PlacesImportResult reports the outcome of one import job.
type PlacesImportResult struct {
	JobID    uuid.UUID `json:"job_id"`
	SiteID   uuid.UUID `json:"site_id"`
	Imported int       `json:"imported"`
	Error    string    `json:"error,omitempty"`
}

// StreamMessage is one raw entry read from a redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
