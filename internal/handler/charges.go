package handler

import (
	"net/http"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/service"

	"github.com/gin-gonic/gin"
)

type ChargesHandler struct{ svc service.ChargeService }

func NewChargesHandler(svc service.ChargeService) *ChargesHandler {
	return &ChargesHandler{svc: svc}
}

func (h *ChargesHandler) Create(c *gin.Context) {
	var req dto.CreateChargeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ChargesHandler) List(c *gin.Context) {
	var filter dto.PageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChargesHandler) GetByID(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ChargesHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateChargeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
