package models

// Block modes.
const (
	ModeOnline   = "online"
	ModeInPerson = "in_person"
)

// AvailabilityBlock is one recurring weekly window of offered hours on a
// course. Times are wall-clock strings; both "3:30 PM" and "15:30" forms are
// accepted and normalized by the scheduling package.
type AvailabilityBlock struct {
	Days      []string `bson:"days" json:"days" binding:"required,min=1"`
	StartTime string   `bson:"startTime" json:"startTime" binding:"required"`
	EndTime   string   `bson:"endTime" json:"endTime" binding:"required"`
	Mode      string   `bson:"mode" json:"mode"`
	Location  string   `bson:"location,omitempty" json:"location,omitempty"` // required when Mode is in_person
}

// AvailabilityBlockInput mirrors the legacy client payload, where the AM/PM
// marker travels in its own field ("startTime":"10:00","startAmPm":"PM").
// Handlers fold it into the canonical AvailabilityBlock before anything else
// sees it.
type AvailabilityBlockInput struct {
	Days      []string `json:"days" binding:"required,min=1"`
	StartTime string   `json:"startTime" binding:"required"`
	StartAmPm string   `json:"startAmPm,omitempty"`
	EndTime   string   `json:"endTime" binding:"required"`
	EndAmPm   string   `json:"endAmPm,omitempty"`
	Mode      string   `json:"mode"`
	Location  string   `json:"location,omitempty"`
}
