package handler

import (
	"net/http"

	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/service"

	"github.com/gin-gonic/gin"
)

type TrucksHandler struct{ svc service.TruckService }

func NewTrucksHandler(svc service.TruckService) *TrucksHandler {
	return &TrucksHandler{svc: svc}
}

func (h *TrucksHandler) Create(c *gin.Context) {
	var req dto.TruckRequest
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

func (h *TrucksHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trucks": resp})
}

func (h *TrucksHandler) GetByMatricule(c *gin.Context) {
	resp, err := h.svc.GetByMatricule(c.Request.Context(), c.Param("matricule"))
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrucksHandler) Update(c *gin.Context) {
	var req dto.TruckRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("matricule"), req)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrucksHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("matricule")); err != nil {
		httpError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
