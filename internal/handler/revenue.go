package handler

import (
	"net/http"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/service"

	"github.com/gin-gonic/gin"
)

type RevenueHandler struct{ svc service.RevenueService }

func NewRevenueHandler(svc service.RevenueService) *RevenueHandler {
	return &RevenueHandler{svc: svc}
}

// Summary godoc
// @Summary Synthèse financière sur une période
// @Tags revenue
// @Produce json
// @Param period query string false "today | lastWeek | last15Days | lastMonth | custom"
// @Param startDate query string false "AAAA-MM-JJ (période custom)"
// @Param endDate query string false "AAAA-MM-JJ (période custom)"
// @Success 200 {object} dto.RevenueSummaryResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/revenue/summary [get]
func (h *RevenueHandler) Summary(c *gin.Context) {
	var filter dto.RevenueFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), filter)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
