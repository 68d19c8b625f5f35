package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gravecare/internal/models/request_models"
	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

type RevenueController struct {
	revenueService services.RevenueService
}

func NewRevenueController(revenueService services.RevenueService) *RevenueController {
	return &RevenueController{revenueService: revenueService}
}

// Report godoc
// @Summary Revenue report (admin)
// @Description view=month|year|range; cleanings and memorials toggle the series,
// neither set returns both. Range view is capped at 30 days.
// @Tags Revenue
// @Security BearerAuth
// @Router /revenue [get]
func (r *RevenueController) Report(c *gin.Context) {
	var query request_models.RevenueQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	report, err := r.revenueService.Report(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "")
}
