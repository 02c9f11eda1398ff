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

type AnswerController struct {
	answerService service.AnswerService
}

func NewAnswerController(answerService service.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

func toAnswerResponse(answer *model.Answer) dto.AnswerResponse {
	var resp dto.AnswerResponse
	if err := copier.Copy(&resp, answer); err != nil {
		log.Error().Err(err).Msg("Failed to map answer to response")
	}
	return resp
}

// SaveAnswer godoc
// @Summary Save an answer for an in-progress attempt
// @Description Records the student's answer; answering the same question again replaces it.
// @Tags answers
// @Accept json
// @Produce json
// @Param id path int true "Attempt ID"
// @Param answer body dto.SaveAnswerRequest true "Answer payload"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Question not part of the exam"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt paused or finalized"
// @Router /attempts/{id}/answers [put]
func (c *AnswerController) SaveAnswer(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.SaveAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	answer, err := c.answerService.Save(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAnswerResponse(answer))
}

// ListAnswers godoc
// @Summary List answers recorded for an attempt
// @Tags answers
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {array} dto.AnswerResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{id}/answers [get]
func (c *AnswerController) ListAnswers(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	answers, err := c.answerService.ListByAttempt(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	responses := make([]dto.AnswerResponse, 0, len(answers))
	for i := range answers {
		responses = append(responses, toAnswerResponse(&answers[i]))
	}
	ctx.JSON(http.StatusOK, responses)
}
