package meeting

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"tutorhive/models"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleMeetService creates Google Calendar events with a Meet conference
// attached, on a service-owned calendar.
type GoogleMeetService struct {
	service    *calendar.Service
	calendarID string
}

// NewGoogleMeetService builds an authenticated calendar client from the OAuth
// client credentials and a previously stored token file.
func NewGoogleMeetService(ctx context.Context, clientID, clientSecret, tokenFile, calendarID string) (*GoogleMeetService, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("google calendar credentials are not configured")
	}
	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
		Scopes: []string{calendar.CalendarEventsScope},
	}

	token, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("could not load calendar token: %w", err)
	}

	service, err := calendar.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleMeetService{service: service, calendarID: calendarID}, nil
}

// Schedule inserts a calendar event spanning the booking and requests a Meet
// link for it. The booking ID doubles as the conference request ID so an
// asynq redelivery cannot create a second conference.
func (s *GoogleMeetService) Schedule(ctx context.Context, details Details) (*models.MeetingInfo, error) {
	loc, err := time.LoadLocation(details.Timezone)
	if err != nil {
		loc = time.UTC
	}

	summary := details.Title
	if summary == "" {
		summary = "Tutoring session"
	}

	event := &calendar.Event{
		Summary:     summary,
		Description: fmt.Sprintf("Lesson between %s and %s", details.Tutor.Name, details.Student.Name),
		Start: &calendar.EventDateTime{
			DateTime: details.Booking.Start.In(loc).Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: details.Booking.End.In(loc).Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		Attendees: []*calendar.EventAttendee{
			{Email: details.Tutor.Email, Organizer: true},
			{Email: details.Student.Email},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId:             details.Booking.ID,
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}

	created, err := s.service.Events.Insert(s.calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting event: %w", err)
	}

	return &models.MeetingInfo{
		EventID:   created.Id,
		JoinURL:   created.HangoutLink,
		Organizer: details.Tutor.Email,
	}, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}
