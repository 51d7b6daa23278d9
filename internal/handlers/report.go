package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mossline/gardenlog/internal/models"
	"github.com/mossline/gardenlog/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary godoc
// @Summary Garden summary
// @Description Collection counts and per-unit harvest grand totals
// @Tags reports
// @Produce json
// @Success 200 {object} services.Summary
// @Router /summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.Summarize())
}

// GetMonthlyTotals godoc
// @Summary Monthly harvest totals
// @Description Amounts summed per YYYY-MM, ascending, for one unit
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param unit query string false "kg or count (default kg)"
// @Success 200 {array} services.MonthlyTotal
// @Failure 400 {object} ErrorResponse
// @Router /reports/monthly [get]
func (h *ReportHandler) GetMonthlyTotals(c *gin.Context) {
	unit, ok := unitParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reportService.MonthlyTotalsForUnit(unit))
}

// GetTotalsByPlantType godoc
// @Summary Harvest totals by plant type
// @Description Amounts summed per resolved plant-type name, descending by total, for one unit
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param unit query string false "kg or count (default kg)"
// @Success 200 {array} services.PlantTypeTotal
// @Failure 400 {object} ErrorResponse
// @Router /reports/by-plant-type [get]
func (h *ReportHandler) GetTotalsByPlantType(c *gin.Context) {
	unit, ok := unitParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reportService.TotalsByPlantTypeForUnit(unit))
}

func unitParam(c *gin.Context) (models.Unit, bool) {
	unit := models.Unit(c.DefaultQuery("unit", string(models.UnitKg)))
	if !unit.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unit must be kg or count"})
		return "", false
	}
	return unit, true
}
