package controller

import (
	"net/http"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/helper"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/services"
)

type StatusController struct {
	status *services.StatusService
}

func NewStatusController(status *services.StatusService) *StatusController {
	return &StatusController{status: status}
}

func (c *StatusController) Root(w http.ResponseWriter, r *http.Request) {
	helper.WriteJSON(w, http.StatusOK, map[string]string{"message": "Welcome to Cafito API"})
}

func (c *StatusController) CreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var in models.StatusCheckCreate
	if !decodeBody(w, r, &in) {
		return
	}

	check, err := c.status.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "Status check not found")
		return
	}

	helper.WriteJSON(w, http.StatusOK, check)
}

func (c *StatusController) GetStatusChecks(w http.ResponseWriter, r *http.Request) {
	listing, err := c.status.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Status check not found")
		return
	}

	writeListing(w, listing)
}
