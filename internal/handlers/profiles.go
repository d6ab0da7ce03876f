package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stylecraft-backend/internal/middleware"
	"stylecraft-backend/internal/models"
)

type ProfilesHandler struct {
	profiles ProfileStore
}

func NewProfilesHandler(profiles ProfileStore) *ProfilesHandler {
	return &ProfilesHandler{profiles: profiles}
}

// GetProfile godoc
// @Summary     Get the caller's profile
// @Tags        profiles
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.Profile
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /profile [get]
func (h *ProfilesHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(userID.String())
	if err != nil {
		writeStoreError(c, err, "profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary     Update the caller's profile
// @Description Creates the profile row on first use
// @Tags        profiles
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.UpdateProfileRequest true "Profile"
// @Success     200 {object} models.Profile
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /profile [put]
func (h *ProfilesHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: validationMessage(err)})
		return
	}
	fullName := sanitizeText(req.FullName)
	if fullName == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "full_name is required"})
		return
	}

	profile, err := h.profiles.UpsertProfile(userID.String(), fullName)
	if err != nil {
		middleware.Logger(c).WithError(err).Error("failed to save profile")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save profile",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}
