// file: controllers/motivation_controller_test.go
package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-campus-events/apiclient"
	"go-campus-events/auth"
	"go-campus-events/models"
)

func TestShowMotivation(t *testing.T) {
	manager := auth.NewManager(&stubAuth{})
	router := setupTestRouter(t, manager)
	controller := NewMotivationController(&mockMotivationAPI{})
	router.GET("/motivation", controller.ShowMotivation)

	w := doRequest(router, "GET", "/motivation", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Motivation")
}

func TestGenerateMotivation_Success(t *testing.T) {
	captured := ""
	api := &mockMotivationAPI{
		generate: func(feeling string) (*models.MotivationContent, error) {
			captured = feeling
			return &models.MotivationContent{
				Quotes: []models.Quote{{Text: "You got this", Author: "Coach"}},
			}, nil
		},
	}
	manager := auth.NewManager(&stubAuth{})
	router := setupTestRouter(t, manager)
	controller := NewMotivationController(api)
	router.POST("/motivation", controller.GenerateMotivation)

	w := doRequest(router, "POST", "/motivation", nil, url.Values{"feeling": {"stressed"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "stressed", captured)
}

func TestGenerateMotivation_EmptyFeeling(t *testing.T) {
	manager := auth.NewManager(&stubAuth{})
	router := setupTestRouter(t, manager)
	controller := NewMotivationController(&mockMotivationAPI{})
	router.POST("/motivation", controller.GenerateMotivation)

	w := doRequest(router, "POST", "/motivation", nil, url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateMotivation_BackendDown(t *testing.T) {
	api := &mockMotivationAPI{
		generate: func(feeling string) (*models.MotivationContent, error) {
			return nil, &apiclient.APIError{Kind: apiclient.ErrNetwork}
		},
	}
	manager := auth.NewManager(&stubAuth{})
	router := setupTestRouter(t, manager)
	controller := NewMotivationController(api)
	router.POST("/motivation", controller.GenerateMotivation)

	w := doRequest(router, "POST", "/motivation", nil, url.Values{"feeling": {"tired"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Could not generate motivation")
}
