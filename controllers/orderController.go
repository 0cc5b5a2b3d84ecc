package controller

import (
	"net/http"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/helper"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/services"

	"github.com/gorilla/mux"
)

const orderNotFound = "Order not found"

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var in models.OrderCreate
	if !decodeBody(w, r, &in) {
		return
	}

	order, err := c.orders.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, orderNotFound)
		return
	}

	helper.WriteJSON(w, http.StatusOK, order)
}

// Get all orders, newest first
func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	listing, err := c.orders.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, orderNotFound)
		return
	}

	writeListing(w, listing)
}

func (c *OrderController) GetOrderById(w http.ResponseWriter, r *http.Request) {
	order, err := c.orders.GetByID(r.Context(), mux.Vars(r)["order_id"])
	if err != nil {
		writeServiceError(w, r, err, orderNotFound)
		return
	}

	helper.WriteJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus takes the new status from the status query parameter.
func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		helper.WriteError(w, http.StatusUnprocessableEntity, "status: field required")
		return
	}

	order, err := c.orders.UpdateStatus(r.Context(), mux.Vars(r)["order_id"], status)
	if err != nil {
		writeServiceError(w, r, err, orderNotFound)
		return
	}

	helper.WriteJSON(w, http.StatusOK, order)
}
