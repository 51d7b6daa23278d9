package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CatalogueHandler struct {
	catalogueService *services.CatalogueService
}

func NewCatalogueHandler(catalogueService *services.CatalogueService) *CatalogueHandler {
	return &CatalogueHandler{catalogueService: catalogueService}
}

type PlantTypeRequest struct {
	Name               string `json:"name" binding:"required"`
	GerminationMinDays int    `json:"germinationMinDays" binding:"omitempty,min=0"`
	GerminationMaxDays int    `json:"germinationMaxDays" binding:"omitempty,min=0"`
	MaturityDays       int    `json:"maturityDays" binding:"required,min=1"`
	HarvestWindowDays  int    `json:"harvestWindowDays" binding:"required,min=1"`
	DefaultUnit        string `json:"defaultUnit" binding:"omitempty,oneof=kg count"`
}

// ListPlantTypes godoc
// @Summary List plant types
// @Description List all catalogue entries in insertion order
// @Tags catalogue
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PlantType
// @Router /plant-types [get]
func (h *CatalogueHandler) ListPlantTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogueService.ListPlantTypes())
}

// GetPlantType godoc
// @Summary Get a plant type
// @Tags catalogue
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plant type ID"
// @Success 200 {object} models.PlantType
// @Failure 404 {object} ErrorResponse
// @Router /plant-types/{id} [get]
func (h *CatalogueHandler) GetPlantType(c *gin.Context) {
	plantType := h.catalogueService.GetPlantType(c.Param("id"))
	if plantType == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: services.ErrPlantTypeNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, plantType)
}

// CreatePlantType godoc
// @Summary Create a plant type
// @Description Add a catalogue entry with its growth timing parameters
// @Tags catalogue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlantTypeRequest true "Plant type"
// @Success 201 {object} models.PlantType
// @Failure 400 {object} ErrorResponse
// @Router /plant-types [post]
func (h *CatalogueHandler) CreatePlantType(c *gin.Context) {
	var req PlantTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	plantType, err := h.catalogueService.CreatePlantType(
		req.Name,
		req.GerminationMinDays,
		req.GerminationMaxDays,
		req.MaturityDays,
		req.HarvestWindowDays,
		models.Unit(req.DefaultUnit),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, plantType)
}

// UpdatePlantType godoc
// @Summary Update a plant type
// @Description Edit a catalogue entry in place; the id never changes
// @Tags catalogue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plant type ID"
// @Param request body PlantTypeRequest true "Plant type"
// @Success 200 {object} models.PlantType
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plant-types/{id} [put]
func (h *CatalogueHandler) UpdatePlantType(c *gin.Context) {
	var req PlantTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	unit := models.Unit(req.DefaultUnit)
	if unit == "" {
		unit = models.UnitKg
	}

	plantType, err := h.catalogueService.UpdatePlantType(
		c.Param("id"),
		req.Name,
		req.GerminationMinDays,
		req.GerminationMaxDays,
		req.MaturityDays,
		req.HarvestWindowDays,
		unit,
	)
	if err != nil {
		if err == services.ErrPlantTypeNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, plantType)
}

// DeletePlantType godoc
// @Summary Delete a plant type
// @Description Remove a catalogue entry; plantings that reference it are kept and resolve as Unknown
// @Tags catalogue
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plant type ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /plant-types/{id} [delete]
func (h *CatalogueHandler) DeletePlantType(c *gin.Context) {
	if err := h.catalogueService.DeletePlantType(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "plant type deleted"})
}
