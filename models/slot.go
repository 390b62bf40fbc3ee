package models

import "time"

// GeneratedSlot is one concrete bookable interval derived from an
// availability block. Slots are computed on demand and never persisted.
type GeneratedSlot struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Mode     string    `json:"mode"`
	Location string    `json:"location,omitempty"`
}

// AvailableSlotsResponse is the payload returned for a course availability
// query.
type AvailableSlotsResponse struct {
	CourseID       string          `json:"courseId"`
	TutorID        string          `json:"tutorId"`
	SlotMinutes    int             `json:"slotMinutes"`
	AvailableSlots []GeneratedSlot `json:"availableSlots"`
}
