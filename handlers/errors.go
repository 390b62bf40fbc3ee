package handlers

import (
	"errors"
	"net/http"

	"tutorhive/services/scheduling"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondSchedulingError maps engine errors onto HTTP statuses: conflicts to
// 409, validation codes to 400, unknown records to 404, the rest to 500.
func respondSchedulingError(c *gin.Context, err error) {
	switch code := scheduling.ErrorCode(err); code {
	case scheduling.CodeConflict:
		utils.JSONCodedError(c, http.StatusConflict, code, err.Error())
	case scheduling.CodeInvalidArgument,
		scheduling.CodeInvalidTimeFormat,
		scheduling.CodeInvalidRange,
		scheduling.CodeInvalidParty:
		utils.JSONCodedError(c, http.StatusBadRequest, code, err.Error())
	default:
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
