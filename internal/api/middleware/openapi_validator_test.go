package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNormalizeValidationPath(t *testing.T) {
	testCases := []struct {
		name     string
		basePath string
		path     string
		want     string
	}{
		{name: "strip prefix", basePath: "/api/v1", path: "/api/v1/onboarding/complete", want: "/onboarding/complete"},
		{name: "root path", basePath: "/api/v1", path: "/api/v1", want: "/"},
		{name: "no match", basePath: "/api/v1", path: "/health/live", want: "/health/live"},
		{name: "empty base", basePath: "", path: "/audit-logs", want: "/audit-logs"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeValidationPath(normalizeBasePath(tc.basePath), tc.path)
			if got != tc.want {
				t.Fatalf("normalizeValidationPath mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestOpenAPIValidatorRejectsInvalidOnboardingRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.POST("/api/v1/onboarding/complete", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{
			"user_id":         "user_1",
			"organization_id": "org_1",
			"saga_id":         "saga-1",
		})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/complete", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid request body, got %d", resp.Code)
	}
}

func TestOpenAPIValidatorAcceptsValidOnboardingRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.POST("/api/v1/onboarding/complete", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{
			"user_id":         "user_1",
			"organization_id": "org_1",
			"saga_id":         "saga-1",
		})
	})

	reqBody := `{
		"email":"jane@acme.example",
		"password":"correct-horse-battery",
		"first_name":"Jane",
		"last_name":"Doe",
		"role":"org_admin",
		"organization_name":"Acme, Inc.",
		"organization_type":"enterprise"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/complete", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for valid request body, got %d, body=%s", resp.Code, resp.Body.String())
	}
}

func TestOpenAPIValidatorRejectsUnknownRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.POST("/api/v1/onboarding/complete", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{
			"user_id":         "user_1",
			"organization_id": "org_1",
			"saga_id":         "saga-1",
		})
	})

	reqBody := `{
		"email":"jane@acme.example",
		"password":"correct-horse-battery",
		"first_name":"Jane",
		"last_name":"Doe",
		"role":"superuser",
		"organization_name":"Acme, Inc.",
		"organization_type":"enterprise"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/complete", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for role outside the closed enum, got %d", resp.Code)
	}
}

func TestOpenAPIValidatorRejectsNonConformingResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.GET("/api/v1/onboarding/requests/:saga_id", func(c *gin.Context) {
		// Missing required fields in the status projection.
		c.JSON(http.StatusOK, gin.H{"saga_id": c.Param("saga_id")})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/onboarding/requests/saga-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for non-conforming response, got %d, body=%s", resp.Code, resp.Body.String())
	}
}

func TestOpenAPIValidatorSkipsUnknownPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.GET("/internal/debug", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/internal/debug", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for path outside the contract, got %d", resp.Code)
	}
}
