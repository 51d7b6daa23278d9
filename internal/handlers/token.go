package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mossline/gardenlog/internal/middleware"
	"github.com/mossline/gardenlog/internal/services"
)

type TokenHandler struct {
	tokenService *services.TokenService
}

func NewTokenHandler(tokenService *services.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

type CreateTokenRequest struct {
	Device string `json:"device" binding:"required"`
}

type TokenResponse struct {
	Token  string `json:"token"`
	Device string `json:"device"`
}

// CreateToken godoc
// @Summary Mint a device token
// @Description Issue a bearer token for another device (phone, cli)
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTokenRequest true "Token request"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tokens [post]
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	token, err := h.tokenService.GenerateToken(req.Device)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	log.Printf("Device %q minted a token for %q", middleware.GetDevice(c), req.Device)

	c.JSON(http.StatusCreated, TokenResponse{Token: token, Device: req.Device})
}
