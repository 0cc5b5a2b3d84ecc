package routes

import (
	"net/http"

	controller "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/controllers"

	"github.com/gorilla/mux"
)

func OrderRoutes(router *mux.Router, orders *controller.OrderController) {

	router.HandleFunc("/orders", orders.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders", orders.CreateOrder).Methods(http.MethodPost)

	router.HandleFunc("/orders/{order_id}", orders.GetOrderById).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}/status", orders.UpdateOrderStatus).Methods(http.MethodPatch)
}
