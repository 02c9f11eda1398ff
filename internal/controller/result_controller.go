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

type ResultController struct {
	resultService service.ResultService
}

func NewResultController(resultService service.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

func toResultResponse(result *model.Result) dto.ResultResponse {
	var resp dto.ResultResponse
	if err := copier.Copy(&resp, result); err != nil {
		log.Error().Err(err).Msg("Failed to map result to response")
	}
	resp.Grade = string(result.Grade)
	return resp
}

// GenerateResult godoc
// @Summary Generate the result for a finalized attempt
// @Description Builds the graded result with grade, rank and pass verdict. Calling again returns the existing result.
// @Tags results
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 201 {object} dto.ResultResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt not finalized yet"
// @Router /attempts/{id}/result [post]
func (c *ResultController) GenerateResult(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	result, err := c.resultService.GenerateResult(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toResultResponse(result))
}

// GetAttemptResult godoc
// @Summary Get the result for an attempt with per-question breakdown
// @Tags results
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 404 {object} dto.ErrorResponse "Result not generated yet"
// @Router /attempts/{id}/result [get]
func (c *ResultController) GetAttemptResult(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	result, err := c.resultService.GetResultWithBreakdown(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetExamResults godoc
// @Summary List results for an exam, best score first
// @Tags results
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {array} dto.ResultResponse
// @Router /exams/{id}/results [get]
func (c *ResultController) GetExamResults(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	results, err := c.resultService.GetExamResults(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	responses := make([]dto.ResultResponse, 0, len(results))
	for i := range results {
		responses = append(responses, toResultResponse(&results[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetStudentResults godoc
// @Summary List a student's results, newest first
// @Tags results
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} dto.ResultResponse
// @Router /students/{id}/results [get]
func (c *ResultController) GetStudentResults(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	results, err := c.resultService.GetStudentResults(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	responses := make([]dto.ResultResponse, 0, len(results))
	for i := range results {
		responses = append(responses, toResultResponse(&results[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}

// PublishResult godoc
// @Summary Publish a result so the student can see it
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/{id}/publish [post]
func (c *ResultController) PublishResult(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	result, err := c.resultService.Publish(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toResultResponse(result))
}
