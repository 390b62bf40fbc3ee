package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorhive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree runs the overlap check and the insert inside a single Mongo
// transaction so two concurrent admissions for the same tutor cannot both
// succeed. Overlap uses half-open intervals; a booking ending exactly when
// another starts is allowed.
func (repo *MongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"tutor_id": booking.TutorID,
			"status":   bson.M{"$ne": models.BookingCancelled},
			"start":    bson.M{"$lt": booking.End},
			"end":      bson.M{"$gt": booking.Start},
		}
		count, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrBookingConflict
		}
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrBookingConflict) {
			return ErrBookingConflict
		}
		if isTransient(err) {
			return fmt.Errorf("%w: %v", ErrAdmissionRace, err)
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// isTransient recognizes write conflicts between concurrent transactions,
// which the server labels as retryable.
func isTransient(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError") ||
			cmdErr.HasErrorLabel("UnknownTransactionCommitResult")
	}
	return false
}
