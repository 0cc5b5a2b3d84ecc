package controller

import (
	"net/http"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/helper"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/services"

	"github.com/gorilla/mux"
)

const menuItemNotFound = "Menu item not found"

type MenuController struct {
	catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{catalog: catalog}
}

// Create a menu item
func (c *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var in models.MenuItemCreate
	if !decodeBody(w, r, &in) {
		return
	}

	item, err := c.catalog.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, menuItemNotFound)
		return
	}

	helper.WriteJSON(w, http.StatusOK, item)
}

// Get all available menu items
func (c *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	listing, err := c.catalog.ListAvailable(r.Context())
	if err != nil {
		writeServiceError(w, r, err, menuItemNotFound)
		return
	}

	writeListing(w, listing)
}

// Get available menu items of one category
func (c *MenuController) GetMenuByCategory(w http.ResponseWriter, r *http.Request) {
	listing, err := c.catalog.ListByCategory(r.Context(), mux.Vars(r)["category"])
	if err != nil {
		writeServiceError(w, r, err, menuItemNotFound)
		return
	}

	writeListing(w, listing)
}

// Get a single menu item, available or not
func (c *MenuController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := c.catalog.GetByID(r.Context(), mux.Vars(r)["item_id"])
	if err != nil {
		writeServiceError(w, r, err, menuItemNotFound)
		return
	}

	helper.WriteJSON(w, http.StatusOK, item)
}

// Update a menu item
func (c *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var in models.MenuItemCreate
	if !decodeBody(w, r, &in) {
		return
	}

	item, err := c.catalog.Update(r.Context(), mux.Vars(r)["item_id"], in)
	if err != nil {
		writeServiceError(w, r, err, menuItemNotFound)
		return
	}

	helper.WriteJSON(w, http.StatusOK, item)
}
