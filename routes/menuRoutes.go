package routes

import (
	"net/http"

	controller "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/controllers"

	"github.com/gorilla/mux"
)

func MenuRoutes(router *mux.Router, menu *controller.MenuController) {

	router.HandleFunc("/menu", menu.GetMenu).Methods(http.MethodGet)
	router.HandleFunc("/menu", menu.CreateMenuItem).Methods(http.MethodPost)

	router.HandleFunc("/menu/category/{category}", menu.GetMenuByCategory).Methods(http.MethodGet)

	router.HandleFunc("/menu/{item_id}", menu.GetMenuItem).Methods(http.MethodGet)
	router.HandleFunc("/menu/{item_id}", menu.UpdateMenuItem).Methods(http.MethodPut)
}
