package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task types handled by the booking worker.
const (
	TypeMeetingProvision = "meeting:provision"
	TypeBookingEmail     = "email:booking-confirmation"
)

// BookingTaskPayload identifies the booking a side-effect task operates on.
// The worker re-reads the booking so a task never acts on stale data.
type BookingTaskPayload struct {
	BookingID string `json:"bookingId"`
}

// Enqueuer is the subset of the asynq client the scheduling engine uses.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func NewMeetingProvisionTask(bookingID string) (*asynq.Task, error) {
	b, err := json.Marshal(BookingTaskPayload{BookingID: bookingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMeetingProvision, b, asynq.MaxRetry(5)), nil
}

func NewBookingEmailTask(bookingID string) (*asynq.Task, error) {
	b, err := json.Marshal(BookingTaskPayload{BookingID: bookingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingEmail, b, asynq.MaxRetry(5)), nil
}
