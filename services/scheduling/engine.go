package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "tutorhive/database/repository/booking"
	courseRepo "tutorhive/database/repository/course"
	userRepo "tutorhive/database/repository/user"
	"tutorhive/models"
	"tutorhive/services/tasks"
	"tutorhive/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const availabilityCacheTTL = 30 * time.Second

// SchedulingService is the public surface of the scheduling engine.
type SchedulingService interface {
	AvailableSlots(ctx context.Context, courseID string, horizonDays, slotMinutes int, ref time.Time) (*models.AvailableSlotsResponse, error)
	BookSlot(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	CompleteBooking(ctx context.Context, id string) error
	TutorBookings(ctx context.Context, tutorID string) ([]models.Booking, error)
}

// DefaultSchedulingEngine is the production scheduling engine.
type DefaultSchedulingEngine struct {
	Bookings bookingRepo.BookingRepository
	Courses  courseRepo.CourseRepository
	Users    userRepo.UserRepository
	Cache    *redis.Client  // optional response cache
	Queue    tasks.Enqueuer // optional side-effect queue

	// DefaultTimezone is used when a course carries no usable zone.
	DefaultTimezone string
}

// AvailableSlots expands the course's availability template over the horizon
// and removes every slot that collides with an existing booking for the
// owning tutor.
func (se *DefaultSchedulingEngine) AvailableSlots(
	ctx context.Context,
	courseID string,
	horizonDays, slotMinutes int,
	ref time.Time,
) (*models.AvailableSlotsResponse, error) {
	logger := utils.GetLogger()

	course, err := se.Courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	cacheKey := availabilityCacheKey(course.TutorID, courseID, horizonDays, slotMinutes)
	if se.Cache != nil {
		if cached, err := se.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var resp models.AvailableSlotsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	loc := se.resolveTimezone(course.Timezone)
	slots, err := GenerateSlots(course.Availability, horizonDays, slotMinutes, ref, loc)
	if err != nil {
		return nil, err
	}

	// Window extends past the horizon so bookings in a midnight-crossing
	// block's tail still participate.
	dayZero := ref.In(loc)
	from := time.Date(dayZero.Year(), dayZero.Month(), dayZero.Day(), 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, horizonDays+2)

	bookings, err := se.Bookings.FindOverlapping(ctx, course.TutorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for tutor %s: %w", course.TutorID, err)
	}

	resp := &models.AvailableSlotsResponse{
		CourseID:       courseID,
		TutorID:        course.TutorID,
		SlotMinutes:    slotMinutes,
		AvailableSlots: FilterAvailable(slots, course.TutorID, bookings),
	}

	if se.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := se.Cache.Set(ctx, cacheKey, data, availabilityCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (se *DefaultSchedulingEngine) resolveTimezone(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
		utils.GetLogger().Warn("unknown course timezone, falling back", zap.String("timezone", name))
	}
	if se.DefaultTimezone != "" {
		if loc, err := time.LoadLocation(se.DefaultTimezone); err == nil {
			return loc
		}
	}
	return time.Local
}

func availabilityCacheKey(tutorID, courseID string, horizonDays, slotMinutes int) string {
	return fmt.Sprintf("avail:%s:%s:%d:%d", tutorID, courseID, horizonDays, slotMinutes)
}

// invalidateAvailability drops every cached availability response for the
// tutor. Called after anything that changes the tutor's calendar.
func (se *DefaultSchedulingEngine) invalidateAvailability(ctx context.Context, tutorID string) {
	if se.Cache == nil {
		return
	}
	logger := utils.GetLogger()

	var cursor uint64
	pattern := fmt.Sprintf("avail:%s:*", tutorID)
	for {
		keys, next, err := se.Cache.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			logger.Warn("availability cache scan failed", zap.String("tutorID", tutorID), zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := se.Cache.Del(ctx, keys...).Err(); err != nil {
				logger.Warn("availability cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
