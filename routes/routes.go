package routes

import (
	"net/http"

	"roommate_server/controllers"
	"roommate_server/logging"
	"roommate_server/services"

	"github.com/gorilla/mux"
)

// Services bundles what the route groups need
type Services struct {
	UserAccounts *services.UserAccountService
	Roommates    *services.RoommateService
	Photos       *services.PhotoService // optional
}

// NewRouter builds the application router. Request logging wraps the whole
// router so unmatched 404 and 405 responses are logged as well.
func NewRouter(svc Services) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")

	RegisterUserRoutes(r, svc.UserAccounts)
	RegisterRoommateRoutes(r, svc.Roommates)
	if svc.Photos != nil {
		RegisterS3Routes(r, svc.Photos)
	}
	return logging.Middleware(r)
}
