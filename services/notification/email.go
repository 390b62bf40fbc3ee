package notification

import (
	"context"
	"fmt"
	"time"

	"tutorhive/models"
	"tutorhive/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

// SESConfig holds configuration for the AWS SES mailer.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	FromAddress     string
	FromName        string
}

// SESNotificationService sends booking emails through AWS SES.
type SESNotificationService struct {
	client      *ses.Client
	fromAddress string
	fromName    string
}

// NewSESNotificationService builds an SES-backed notification service.
func NewSESNotificationService(cfg SESConfig) (*SESNotificationService, error) {
	if cfg.Region == "" || cfg.FromAddress == "" {
		return nil, fmt.Errorf("ses notification service requires a region and a from address")
	}
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	}
	return &SESNotificationService{
		client:      ses.NewFromConfig(awsCfg),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}, nil
}

// SendBookingConfirmation emails both parties of a freshly admitted booking.
func (s *SESNotificationService) SendBookingConfirmation(
	ctx context.Context,
	booking models.Booking,
	tutor, student models.User,
	courseTitle string,
) error {
	logger := utils.GetLogger()

	subject := "Your lesson is booked"
	if courseTitle != "" {
		subject = fmt.Sprintf("Your %s lesson is booked", courseTitle)
	}

	when := fmt.Sprintf("%s to %s",
		booking.Start.Format(time.RFC1123),
		booking.End.Format(time.RFC1123))
	join := ""
	if booking.Meeting != nil && booking.Meeting.JoinURL != "" {
		join = fmt.Sprintf("\nJoin link: %s", booking.Meeting.JoinURL)
	}

	var firstErr error
	for _, recipient := range []models.User{student, tutor} {
		body := fmt.Sprintf("Hi %s,\n\nA lesson between %s and %s is confirmed for %s.%s\n",
			recipient.Name, tutor.Name, student.Name, when, join)
		if err := s.send(ctx, recipient.Email, subject, body); err != nil {
			logger.Error("failed to send booking confirmation",
				zap.String("bookingID", booking.ID), zap.String("to", recipient.Email), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *SESNotificationService) send(ctx context.Context, to, subject, text string) error {
	source := s.fromAddress
	if s.fromName != "" {
		source = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}
	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(text),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}
	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	return nil
}
