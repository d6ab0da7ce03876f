package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stylecraft-backend/internal/catalog"
)

// ListColors godoc
// @Summary     Color catalog
// @Description Colors offered by the recolor flow
// @Tags        catalog
// @Produce     json
// @Success     200 {array} catalog.Color
// @Router      /catalog/colors [get]
func ListColors(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Colors())
}

// ListOptions godoc
// @Summary     Selectable options
// @Description Categories, styles, fabrics, delivery slots and payment methods
// @Tags        catalog
// @Produce     json
// @Success     200 {object} catalog.Options
// @Router      /catalog/options [get]
func ListOptions(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.AllOptions())
}
