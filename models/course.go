package models

import "time"

// Course is a tutor's published offering. It owns the weekly availability
// template that slot generation expands.
type Course struct {
	ID           string              `bson:"id" json:"id"`
	TutorID      string              `bson:"tutor_id" json:"tutorId"`
	Title        string              `bson:"title" json:"title"`
	Subject      string              `bson:"subject" json:"subject"`
	Description  string              `bson:"description,omitempty" json:"description,omitempty"`
	Timezone     string              `bson:"timezone" json:"timezone"` // IANA zone the availability is declared in
	Availability []AvailabilityBlock `bson:"availability" json:"availability"`
	CreatedAt    time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updatedAt"`
}
