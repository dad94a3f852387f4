package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenantforge.io/tenantforge/internal/domain"
	apperrors "tenantforge.io/tenantforge/internal/pkg/errors"
	"tenantforge.io/tenantforge/internal/usecase"
)

// OnboardingResponse is the provisioning result body.
type OnboardingResponse struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	SagaID         string `json:"saga_id"`
	Replayed       bool   `json:"replayed,omitempty"`
}

// CompleteOnboarding handles POST /onboarding/complete.
//
// The endpoint is public: the applicant has no token before the tenant
// exists. Structural validation (required fields, closed role enum) is done
// by the OpenAPI middleware before the handler runs.
func (s *Server) CompleteOnboarding(c *gin.Context) {
	var data domain.OnboardingData
	if err := c.ShouldBindJSON(&data); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "invalid request body"))
		return
	}

	out, err := s.completeOnboarding.Execute(c.Request.Context(), usecase.CompleteOnboardingInput{Data: data})
	if err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusCreated
	if out.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, OnboardingResponse{
		UserID:         out.Result.UserID,
		OrganizationID: out.Result.OrganizationID,
		SagaID:         out.Result.SagaID,
		Replayed:       out.Replayed,
	})
}

// GetOnboardingStatus handles GET /onboarding/requests/{saga_id}.
func (s *Server) GetOnboardingStatus(c *gin.Context) {
	out, err := s.onboardingStatus.Execute(c.Request.Context(), usecase.GetOnboardingStatusInput{
		SagaID: c.Param("saga_id"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}
