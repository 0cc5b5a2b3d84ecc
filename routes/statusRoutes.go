package routes

import (
	"net/http"

	controller "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/controllers"

	"github.com/gorilla/mux"
)

func StatusRoutes(router *mux.Router, status *controller.StatusController) {
	router.HandleFunc("/", status.Root).Methods(http.MethodGet)
	router.HandleFunc("/status", status.GetStatusChecks).Methods(http.MethodGet)
	router.HandleFunc("/status", status.CreateStatusCheck).Methods(http.MethodPost)
}
