package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	courseRepo "tutorhive/database/repository/course"
	"tutorhive/models"
	"tutorhive/services/scheduling"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// CourseHandler serves course offerings and their availability templates.
type CourseHandler struct {
	Courses courseRepo.CourseRepository
}

func NewCourseHandler(courses courseRepo.CourseRepository) *CourseHandler {
	return &CourseHandler{Courses: courses}
}

// CreateCourseRequest is the payload for publishing a course offering.
type CreateCourseRequest struct {
	TutorID      string                          `json:"tutorId" binding:"required"`
	Title        string                          `json:"title" binding:"required"`
	Subject      string                          `json:"subject"`
	Description  string                          `json:"description"`
	Timezone     string                          `json:"timezone"`
	Availability []models.AvailabilityBlockInput `json:"availability"`
}

// CreateCourse handles POST /api/courses.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			utils.JSONCodedError(c, http.StatusBadRequest, scheduling.CodeInvalidArgument,
				fmt.Sprintf("unknown timezone %q", req.Timezone))
			return
		}
	}

	blocks, err := normalizeBlocks(req.Availability)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	course := &models.Course{
		TutorID:      req.TutorID,
		Title:        req.Title,
		Subject:      req.Subject,
		Description:  req.Description,
		Timezone:     req.Timezone,
		Availability: blocks,
	}
	if err := h.Courses.Create(c.Request.Context(), course); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create course", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"course": course})
}

// GetCourse handles GET /api/courses/:id.
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.Courses.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "course not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch course", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

// SetAvailability handles PUT /api/courses/:id/availability, replacing the
// course's weekly template wholesale.
func (h *CourseHandler) SetAvailability(c *gin.Context) {
	var req struct {
		Availability []models.AvailabilityBlockInput `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	blocks, err := normalizeBlocks(req.Availability)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	if err := h.Courses.SetAvailability(c.Request.Context(), c.Param("id"), blocks); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "course not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": blocks})
}

// normalizeBlocks folds the legacy split AM/PM fields into canonical clock
// strings and rejects templates that could never generate a slot. Editors get
// the error up front; a stored template is parseable by construction.
func normalizeBlocks(inputs []models.AvailabilityBlockInput) ([]models.AvailabilityBlock, error) {
	blocks := make([]models.AvailabilityBlock, 0, len(inputs))
	for i, in := range inputs {
		block := models.AvailabilityBlock{
			Days:      in.Days,
			StartTime: joinClock(in.StartTime, in.StartAmPm),
			EndTime:   joinClock(in.EndTime, in.EndAmPm),
			Mode:      in.Mode,
			Location:  in.Location,
		}
		if block.Mode == "" {
			block.Mode = models.ModeOnline
		}
		if block.Mode == models.ModeInPerson && strings.TrimSpace(block.Location) == "" {
			return nil, &scheduling.SchedulingError{
				Code:    scheduling.CodeInvalidArgument,
				Message: fmt.Sprintf("block %d: in-person blocks need a location", i+1),
			}
		}
		if _, err := scheduling.ParseClockTime(block.StartTime); err != nil {
			return nil, err
		}
		if _, err := scheduling.ParseClockTime(block.EndTime); err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func joinClock(clock, marker string) string {
	if marker == "" {
		return clock
	}
	return strings.TrimSpace(clock) + " " + strings.TrimSpace(marker)
}
