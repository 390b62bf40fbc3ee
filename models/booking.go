package models

import "time"

// Booking statuses.
const (
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking represents a confirmed lesson booking between a student and a tutor.
type Booking struct {
	ID        string       `bson:"id" json:"id"`
	TutorID   string       `bson:"tutor_id" json:"tutorId"`
	StudentID string       `bson:"student_id" json:"studentId"`
	CourseID  string       `bson:"course_id,omitempty" json:"courseId,omitempty"`
	Start     time.Time    `bson:"start" json:"start"`
	End       time.Time    `bson:"end" json:"end"`
	Status    string       `bson:"status" json:"status"`
	CreatedAt time.Time    `bson:"created_at" json:"createdAt"`
	Meeting   *MeetingInfo `bson:"meeting,omitempty" json:"meeting,omitempty"` // attached by the worker, best-effort
}

// Completed reports whether the lesson has been marked as held.
func (b Booking) Completed() bool { return b.Status == BookingCompleted }

// MeetingInfo holds the external video-meeting metadata for a booking. It is
// decoration only; a booking without it is still valid.
type MeetingInfo struct {
	EventID   string `bson:"event_id" json:"eventId"`
	JoinURL   string `bson:"join_url" json:"joinUrl"`
	Organizer string `bson:"organizer" json:"organizer"`
}

// BookingInput is the request payload for creating a booking. Start and End
// are ISO-8601 instants.
type BookingInput struct {
	TutorID   string    `json:"tutorId" binding:"required"`
	StudentID string    `json:"studentId" binding:"required"`
	CourseID  string    `json:"courseId,omitempty"`
	Start     time.Time `json:"start" binding:"required"`
	End       time.Time `json:"end" binding:"required"`
}
