package handler

import (
	"net/http"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/service"

	"github.com/gin-gonic/gin"
)

type BoxesHandler struct{ svc service.BoxService }

func NewBoxesHandler(svc service.BoxService) *BoxesHandler {
	return &BoxesHandler{svc: svc}
}

func (h *BoxesHandler) Create(c *gin.Context) {
	var req dto.CreateBoxRequest
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

func (h *BoxesHandler) List(c *gin.Context) {
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

func (h *BoxesHandler) GetByID(c *gin.Context) {
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

func (h *BoxesHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBoxRequest
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

func (h *BoxesHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httpError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
