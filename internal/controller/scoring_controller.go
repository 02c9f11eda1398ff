package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ptmanh/examcore/internal/service"
)

type ScoringController struct {
	scoringService service.ScoringService
}

func NewScoringController(scoringService service.ScoringService) *ScoringController {
	return &ScoringController{scoringService: scoringService}
}

// GetScoringProgress godoc
// @Summary Get grading progress for an attempt
// @Tags scoring
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.ScoringProgressResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{id}/scoring-progress [get]
func (c *ScoringController) GetScoringProgress(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	progress, err := c.scoringService.GetScoringProgress(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// RegradeAnswer godoc
// @Summary Regrade a single answer
// @Description Rescoring one answer after a reference or rubric correction, refreshing the attempt totals.
// @Tags scoring
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.AnswerResponse
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Router /answers/{id}/regrade [post]
func (c *ScoringController) RegradeAnswer(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	answer, err := c.scoringService.RegradeAnswer(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAnswerResponse(answer))
}
