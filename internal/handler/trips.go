package handler

import (
	"net/http"

	"github.com/amine-amroussi/gestion-de-stock/internal/apierror"
	"github.com/amine-amroussi/gestion-de-stock/internal/dto"
	"github.com/amine-amroussi/gestion-de-stock/internal/service"

	"github.com/gin-gonic/gin"
)

type TripsHandler struct{ svc service.TripService }

func NewTripsHandler(svc service.TripService) *TripsHandler {
	return &TripsHandler{svc: svc}
}

// Start godoc
// @Summary Démarrer une tournée (chargement du camion)
// @Tags trips
// @Accept json
// @Produce json
// @Param body body dto.StartTripRequest true "Chargement"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/trip/start [post]
func (h *TripsHandler) Start(c *gin.Context) {
	var req dto.StartTripRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Start(c.Request.Context(), req)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Finish godoc
// @Summary Clôturer une tournée (règlement)
// @Tags trips
// @Accept json
// @Produce json
// @Param id path int true "Identifiant de la tournée"
// @Param body body dto.FinishTripRequest true "Retours et encaissement"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/trip/{id} [patch]
func (h *TripsHandler) Finish(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.FinishTripRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Finish(c.Request.Context(), id, req)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TripsHandler) Transfer(c *gin.Context) {
	var req dto.TransferTripRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Transfer(c.Request.Context(), req)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TripsHandler) EmptyTruck(c *gin.Context) {
	matricule := c.Param("matricule")
	if matricule == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Immatriculation manquante"))
		return
	}
	resp, err := h.svc.EmptyTruck(c.Request.Context(), matricule)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TripsHandler) GetByID(c *gin.Context) {
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

func (h *TripsHandler) ListActive(c *gin.Context) {
	resp, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": resp})
}

func (h *TripsHandler) ListClosed(c *gin.Context) {
	var filter dto.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListClosed(c.Request.Context(), filter)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LastTruck shows the unsold remainder sitting in a truck after its most
// recent closed trip.
func (h *TripsHandler) LastTruck(c *gin.Context) {
	matricule := c.Param("matricule")
	if matricule == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Immatriculation manquante"))
		return
	}
	resp, err := h.svc.LastTruck(c.Request.Context(), matricule)
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TripsHandler) Invoice(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Invoice(c.Request.Context(), id, c.Query("type"))
	if err != nil {
		httpError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
