package routes

import (
	"net/http"

	controller "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/controllers"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/helper"
	middleware "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/middlewares"

	"github.com/gorilla/mux"
)

type Controllers struct {
	Menu   *controller.MenuController
	Orders *controller.OrderController
	Status *controller.StatusController
}

var (
	notFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helper.WriteError(w, http.StatusNotFound, "Not Found")
	})
	methodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helper.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
)

// NewRouter mounts every API route under /api. Unmatched paths and methods
// under /api answer with JSON 404/405; a trailing slash mismatch redirects to
// the registered path.
func NewRouter(c Controllers) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = methodNotAllowed

	api := router.PathPrefix("/api").Subrouter()
	api.StrictSlash(true)
	api.NotFoundHandler = notFound
	api.MethodNotAllowedHandler = methodNotAllowed
	StatusRoutes(api, c.Status)
	MenuRoutes(api, c.Menu)
	OrderRoutes(api, c.Orders)

	return router
}

// Handler wraps the router with the middleware chain:
// Logging -> CORS -> Recover -> router.
func Handler(c Controllers) http.Handler {
	return middleware.Logging(
		middleware.CORS(
			middleware.Recover(NewRouter(c)),
		),
	)
}
