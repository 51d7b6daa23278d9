package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/services"
)

type HarvestHandler struct {
	harvestService *services.HarvestService
}

func NewHarvestHandler(harvestService *services.HarvestService) *HarvestHandler {
	return &HarvestHandler{harvestService: harvestService}
}

type LogHarvestRequest struct {
	PlantingID string  `json:"plantingId" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Unit       string  `json:"unit" binding:"omitempty,oneof=kg count"`
	Notes      string  `json:"notes"`
}

// ListHarvests godoc
// @Summary List harvests
// @Description List the harvest ledger, newest first; filter with ?plantingId=
// @Tags harvests
// @Produce json
// @Security BearerAuth
// @Param plantingId query string false "Only harvests for this planting"
// @Success 200 {array} models.Harvest
// @Router /harvests [get]
func (h *HarvestHandler) ListHarvests(c *gin.Context) {
	if plantingID := c.Query("plantingId"); plantingID != "" {
		c.JSON(http.StatusOK, h.harvestService.ListHarvestsForPlanting(plantingID))
		return
	}
	c.JSON(http.StatusOK, h.harvestService.ListHarvests())
}

// GetHarvest godoc
// @Summary Get a harvest
// @Tags harvests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Harvest ID"
// @Success 200 {object} models.Harvest
// @Failure 404 {object} ErrorResponse
// @Router /harvests/{id} [get]
func (h *HarvestHandler) GetHarvest(c *gin.Context) {
	harvest := h.harvestService.GetHarvest(c.Param("id"))
	if harvest == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: services.ErrHarvestNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, harvest)
}

// LogHarvest godoc
// @Summary Log a harvest
// @Description Record a yield event against a planting; the unit defaults to the plant type's default when omitted
// @Tags harvests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogHarvestRequest true "Harvest"
// @Success 201 {object} models.Harvest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /harvests [post]
func (h *HarvestHandler) LogHarvest(c *gin.Context) {
	var req LogHarvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	harvest, err := h.harvestService.LogHarvest(req.PlantingID, date, req.Amount, models.Unit(req.Unit), req.Notes)
	if err != nil {
		if err == services.ErrPlantingNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, harvest)
}

// DeleteHarvest godoc
// @Summary Delete a harvest
// @Description Remove one ledger entry
// @Tags harvests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Harvest ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /harvests/{id} [delete]
func (h *HarvestHandler) DeleteHarvest(c *gin.Context) {
	if err := h.harvestService.DeleteHarvest(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "harvest deleted"})
}
