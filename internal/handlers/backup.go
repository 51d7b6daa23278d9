package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mossline/gardenlog/internal/services"
)

type BackupHandler struct {
	backupService *services.BackupService
}

func NewBackupHandler(backupService *services.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// ExportBackup godoc
// @Summary Export a backup
// @Description Snapshot the three collections plus an export timestamp
// @Tags backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Backup
// @Router /backup/export [get]
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	c.JSON(http.StatusOK, h.backupService.Export())
}

// ImportBackup godoc
// @Summary Import a backup
// @Description Validate the payload and replace all three collections, or reject it and change nothing
// @Tags backup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /backup/import [post]
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read body"})
		return
	}

	if err := h.backupService.Import(data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "backup imported"})
}
