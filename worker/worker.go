package worker

import (
	"context"
	"encoding/json"

	"tutorhive/config"
	bookingRepo "tutorhive/database/repository/booking"
	courseRepo "tutorhive/database/repository/course"
	userRepo "tutorhive/database/repository/user"
	"tutorhive/models"
	"tutorhive/services/meeting"
	"tutorhive/services/notification"
	"tutorhive/services/tasks"
	"tutorhive/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Deps wires the repositories and external services the booking worker needs.
type Deps struct {
	Bookings bookingRepo.BookingRepository
	Courses  courseRepo.CourseRepository
	Users    userRepo.UserRepository
	Meetings meeting.Service                  // nil disables meeting provisioning
	Notifier notification.NotificationService // nil disables emails

	DefaultTimezone string
}

// Start runs the asynq worker in the background. Side effects run here,
// after the booking is already durable; a handler error only triggers
// asynq's own retry policy, never a booking rollback.
func Start(deps Deps) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeMeetingProvision, handleMeetingProvision(deps))
	mux.HandleFunc(tasks.TypeBookingEmail, handleBookingEmail(deps))

	go func() {
		logger.Info("starting booking side-effect worker")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("booking worker failed to start", zap.Error(err))
		}
	}()
}

// NewQueueClient returns the asynq client the scheduling engine enqueues with.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

func handleMeetingProvision(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.BookingTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("meeting task has invalid payload", zap.Error(err))
			return err
		}
		if deps.Meetings == nil {
			logger.Warn("meeting provisioning disabled, skipping", zap.String("bookingID", p.BookingID))
			return nil
		}

		booking, tutor, student, title, tz, err := loadBookingContext(ctx, deps, p.BookingID)
		if err != nil {
			return err
		}
		if booking.Status == models.BookingCancelled {
			return nil
		}
		if booking.Meeting != nil {
			// Redelivered task; the meeting already exists.
			return nil
		}

		info, err := deps.Meetings.Schedule(ctx, meeting.Details{
			Booking:  *booking,
			Tutor:    *tutor,
			Student:  *student,
			Title:    title,
			Timezone: tz,
		})
		if err != nil {
			logger.Error("meeting provisioning failed",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}

		if err := deps.Bookings.AttachMeeting(ctx, p.BookingID, *info); err != nil {
			logger.Error("failed to attach meeting metadata",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		logger.Info("meeting provisioned",
			zap.String("bookingID", p.BookingID), zap.String("eventID", info.EventID))
		return nil
	}
}

func handleBookingEmail(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.BookingTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("email task has invalid payload", zap.Error(err))
			return err
		}
		if deps.Notifier == nil {
			logger.Warn("booking emails disabled, skipping", zap.String("bookingID", p.BookingID))
			return nil
		}

		booking, tutor, student, title, _, err := loadBookingContext(ctx, deps, p.BookingID)
		if err != nil {
			return err
		}
		if booking.Status == models.BookingCancelled {
			return nil
		}

		if err := deps.Notifier.SendBookingConfirmation(ctx, *booking, *tutor, *student, title); err != nil {
			logger.Error("confirmation email failed",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

func loadBookingContext(ctx context.Context, deps Deps, bookingID string) (*models.Booking, *models.User, *models.User, string, string, error) {
	booking, err := deps.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, nil, "", "", err
	}
	tutor, err := deps.Users.GetByID(ctx, booking.TutorID)
	if err != nil {
		return nil, nil, nil, "", "", err
	}
	student, err := deps.Users.GetByID(ctx, booking.StudentID)
	if err != nil {
		return nil, nil, nil, "", "", err
	}

	title := ""
	tz := deps.DefaultTimezone
	if booking.CourseID != "" {
		if course, err := deps.Courses.GetByID(ctx, booking.CourseID); err == nil {
			title = course.Title
			if course.Timezone != "" {
				tz = course.Timezone
			}
		}
	}
	return booking, tutor, student, title, tz, nil
}
