// User profile HTTP handlers.
//
//   - GET /profile  (fetch)
//   - PUT /profile  (wholesale save)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthloop/go-health-backend/internal/domain"
	"github.com/healthloop/go-health-backend/internal/services"
)

// ProfileRequest is the JSON payload for saving a profile. The stored row
// matches the submission exactly: omitted fields are cleared.
type ProfileRequest struct {
	FullName          string  `json:"full_name" example:"Alex Doe"`
	DateOfBirth       string  `json:"date_of_birth" example:"1990-04-21"`
	BloodGroup        string  `json:"blood_group" example:"O+"`
	HeightCM          float64 `json:"height_cm" example:"178"`
	WeightKG          float64 `json:"weight_kg" example:"74.5"`
	Allergies         string  `json:"allergies" example:"pollen; penicillin"`
	Medications       string  `json:"medications"`
	ChronicConditions string  `json:"chronic_conditions"`
	EmergencyContact  string  `json:"emergency_contact" example:"Jo Doe +44 7700 900000"`
}

// GetProfile godoc
// @ID          getProfile
// @Summary     Fetch profile
// @Description Returns the user's profile, or 404 if none has been saved yet.
// @Tags        Profile
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {object}  domain.UserProfile
// @Failure     404  {object}  handlers.ErrorResponse  "No profile saved"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profile [get]
func (h *Handlers) GetProfile(c *gin.Context) {
	p, err := h.profileSvc.Get(c.Request.Context(), userID(c))
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "profile not found")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// PutProfile godoc
// @ID          putProfile
// @Summary     Save profile
// @Description Replaces the user's profile wholesale with the submitted values.
// @Tags        Profile
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.ProfileRequest  true  "Profile payload"
//
// @Success     200  {object}  domain.UserProfile
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profile [put]
func (h *Handlers) PutProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.profileSvc.Save(c.Request.Context(), userID(c), &domain.UserProfile{
		FullName:          req.FullName,
		DateOfBirth:       req.DateOfBirth,
		BloodGroup:        req.BloodGroup,
		HeightCM:          req.HeightCM,
		WeightKG:          req.WeightKG,
		Allergies:         req.Allergies,
		Medications:       req.Medications,
		ChronicConditions: req.ChronicConditions,
		EmergencyContact:  req.EmergencyContact,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}
