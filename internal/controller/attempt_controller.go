package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/ptmanh/examcore/internal/dto"
	"github.com/ptmanh/examcore/internal/model"
	"github.com/ptmanh/examcore/internal/service"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

func toAttemptResponse(attempt *model.ExamAttempt) dto.AttemptResponse {
	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Msg("Failed to map attempt to response")
	}
	resp.Status = string(attempt.Status)
	return resp
}

// CreateAttempt godoc
// @Summary Start an exam attempt
// @Description Starts a new attempt for the student, or returns the live attempt if one exists.
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt body dto.CreateAttemptRequest true "Exam and student"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or exam not open"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam already submitted or attempt exhausted"
// @Router /attempts [post]
func (c *AttemptController) CreateAttempt(ctx *gin.Context) {
	var req dto.CreateAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	attempt, err := c.attemptService.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toAttemptResponse(attempt))
}

// GetAttempt godoc
// @Summary Get attempt details
// @Tags attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	attempt, err := c.attemptService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAttemptResponse(attempt))
}

// ListStudentAttempts godoc
// @Summary List a student's attempts
// @Tags attempts
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} dto.AttemptResponse
// @Router /students/{id}/attempts [get]
func (c *AttemptController) ListStudentAttempts(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	attempts, err := c.attemptService.ListByStudent(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	responses := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		responses = append(responses, toAttemptResponse(&attempts[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}

// PauseAttempt godoc
// @Summary Pause an in-progress attempt
// @Tags attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt not in progress"
// @Router /attempts/{id}/pause [post]
func (c *AttemptController) PauseAttempt(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	attempt, err := c.attemptService.Pause(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAttemptResponse(attempt))
}

// ResumeAttempt godoc
// @Summary Resume a paused attempt
// @Tags attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt not paused"
// @Router /attempts/{id}/resume [post]
func (c *AttemptController) ResumeAttempt(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	attempt, err := c.attemptService.Resume(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAttemptResponse(attempt))
}

// SubmitAttempt godoc
// @Summary Submit an attempt for grading
// @Description Finalizes the attempt and triggers automatic scoring.
// @Tags attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already finalized"
// @Router /attempts/{id}/submit [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	attempt, err := c.attemptService.Submit(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAttemptResponse(attempt))
}

// GetTimeRemaining godoc
// @Summary Get remaining time for an attempt
// @Description Reports seconds left; an exhausted attempt is timed out as a side effect.
// @Tags attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.TimeRemainingResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{id}/time-remaining [get]
func (c *AttemptController) GetTimeRemaining(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	remaining, err := c.attemptService.CheckTimeRemaining(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, remaining)
}

// AddViolation godoc
// @Summary Record a proctoring violation
// @Tags attempts
// @Accept json
// @Produce json
// @Param id path int true "Attempt ID"
// @Param violation body dto.ViolationRequest true "Violation details"
// @Success 200 {object} dto.CheatingWarningResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already finalized"
// @Router /attempts/{id}/violations [post]
func (c *AttemptController) AddViolation(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.ViolationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	warnings, err := c.attemptService.AddViolation(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, warnings)
}

// GetCheatingWarnings godoc
// @Summary Get cheating warning status
// @Tags attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.CheatingWarningResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{id}/cheating-warnings [get]
func (c *AttemptController) GetCheatingWarnings(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	warnings, err := c.attemptService.GetCheatingWarnings(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, warnings)
}

// ResetCheatingWarnings godoc
// @Summary Reset the cheating warning counter
// @Tags attempts
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.CheatingWarningResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already finalized"
// @Router /attempts/{id}/cheating-warnings [delete]
func (c *AttemptController) ResetCheatingWarnings(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	warnings, err := c.attemptService.ResetCheatingWarnings(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, warnings)
}
