package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/services"
)

type PlantingHandler struct {
	plantingService *services.PlantingService
	phaseService    *services.PhaseService
}

func NewPlantingHandler(plantingService *services.PlantingService, phaseService *services.PhaseService) *PlantingHandler {
	return &PlantingHandler{
		plantingService: plantingService,
		phaseService:    phaseService,
	}
}

type CreatePlantingRequest struct {
	PlantTypeID     string `json:"plantTypeId" binding:"required"`
	PlantedAt       string `json:"plantedAt" binding:"required"`
	Location        string `json:"location"`
	QuantityPlanted int    `json:"quantityPlanted" binding:"omitempty,min=0"`
	Notes           string `json:"notes"`
}

type PhaseResponse struct {
	Available bool                    `json:"available"`
	Snapshot  *services.PhaseSnapshot `json:"snapshot,omitempty"`
}

// ListPlantings godoc
// @Summary List plantings
// @Description List all plantings, newest first, archived included
// @Tags plantings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Planting
// @Router /plantings [get]
func (h *PlantingHandler) ListPlantings(c *gin.Context) {
	c.JSON(http.StatusOK, h.plantingService.ListPlantings())
}

// GetPlanting godoc
// @Summary Get a planting
// @Tags plantings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Planting ID"
// @Success 200 {object} models.Planting
// @Failure 404 {object} ErrorResponse
// @Router /plantings/{id} [get]
func (h *PlantingHandler) GetPlanting(c *gin.Context) {
	planting := h.plantingService.GetPlanting(c.Param("id"))
	if planting == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: services.ErrPlantingNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, planting)
}

// CreatePlanting godoc
// @Summary Create a planting
// @Description Record a sowing or transplanting event
// @Tags plantings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePlantingRequest true "Planting"
// @Success 201 {object} models.Planting
// @Failure 400 {object} ErrorResponse
// @Router /plantings [post]
func (h *PlantingHandler) CreatePlanting(c *gin.Context) {
	var req CreatePlantingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	plantedAt, err := models.ParseDate(req.PlantedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	planting, err := h.plantingService.CreatePlanting(req.PlantTypeID, plantedAt, req.Location, req.QuantityPlanted, req.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, planting)
}

// ToggleArchived godoc
// @Summary Toggle archive flag
// @Description Flip a planting's archived flag; archived plantings stay visible and keep feeding reports
// @Tags plantings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Planting ID"
// @Success 200 {object} models.Planting
// @Failure 404 {object} ErrorResponse
// @Router /plantings/{id}/archive [post]
func (h *PlantingHandler) ToggleArchived(c *gin.Context) {
	planting, err := h.plantingService.ToggleArchived(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, planting)
}

// DeletePlanting godoc
// @Summary Delete a planting
// @Description Remove a planting; its harvest records are kept and skipped in aggregation
// @Tags plantings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Planting ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /plantings/{id} [delete]
func (h *PlantingHandler) DeletePlanting(c *gin.Context) {
	if err := h.plantingService.DeletePlanting(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "planting deleted"})
}

// GetPhase godoc
// @Summary Estimate growth phases
// @Description Progress snapshot for a planting on a given day; available=false when the plant type has been deleted
// @Tags plantings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Planting ID"
// @Param today query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} PhaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plantings/{id}/phase [get]
func (h *PlantingHandler) GetPhase(c *gin.Context) {
	today := models.Today()
	if raw := c.Query("today"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		today = parsed
	}

	snapshot, err := h.phaseService.EstimateForPlanting(c.Param("id"), today)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, PhaseResponse{Available: snapshot != nil, Snapshot: snapshot})
}
