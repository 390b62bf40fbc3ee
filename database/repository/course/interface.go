package courseRepo

import (
	"context"

	"tutorhive/models"
)

// CourseRepository defines data access for course offerings and their
// availability templates.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	GetByTutor(ctx context.Context, tutorID string) ([]models.Course, error)
	SetAvailability(ctx context.Context, id string, blocks []models.AvailabilityBlock) error
	Delete(ctx context.Context, id string) error
}
