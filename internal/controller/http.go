package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ptmanh/examcore/internal/apperror"
	"github.com/ptmanh/examcore/internal/dto"
)

// parseID reads a uint path parameter, writing a 400 response on failure.
func parseID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto HTTP status codes.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperror.ErrInvalidTransition),
		errors.Is(err, apperror.ErrAttemptTerminal):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperror.ErrAlreadySubmitted),
		errors.Is(err, apperror.ErrDuplicateAttempt):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperror.ErrBadRequest):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperror.ErrScoringProvider):
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
