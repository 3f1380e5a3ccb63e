package handlers

import (
	"net/http"

	"github.com/gamehive/accounts_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router / [get]
func getHome(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{}, "Server is running")
}

// notFound is the fallback for unmatched routes.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.APIErrorResponse{
		Success: false,
		Message: "Route not found",
	})
}
