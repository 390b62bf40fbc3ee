package courseRepo

import (
	"context"
	"fmt"
	"time"

	"tutorhive/database"
	"tutorhive/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCourseRepo implements CourseRepository using MongoDB.
type MongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo constructs a new instance of MongoCourseRepo.
func NewMongoCourseRepo() *MongoCourseRepo {
	db := database.MongoClient.Database(database.Name)
	return &MongoCourseRepo{coll: db.Collection("courses")}
}

func (repo *MongoCourseRepo) Create(ctx context.Context, course *models.Course) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, course); err != nil {
		return fmt.Errorf("error inserting course: %w", err)
	}
	return nil
}

func (repo *MongoCourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var course models.Course
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&course); err != nil {
		return nil, fmt.Errorf("error fetching course with id %s: %w", id, err)
	}
	return &course, nil
}

func (repo *MongoCourseRepo) GetByTutor(ctx context.Context, tutorID string) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"tutor_id": tutorID})
	if err != nil {
		return nil, fmt.Errorf("error querying courses for tutor %s: %w", tutorID, err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("error decoding courses for tutor %s: %w", tutorID, err)
	}
	return courses, nil
}

func (repo *MongoCourseRepo) SetAvailability(ctx context.Context, id string, blocks []models.AvailabilityBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"availability": blocks,
		"updated_at":   time.Now().UTC(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating availability for course %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *MongoCourseRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting course %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
