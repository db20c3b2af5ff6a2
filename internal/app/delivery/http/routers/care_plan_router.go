package routers

import (
	"revolucare-service/internal/app/delivery/http/controllers"
	"revolucare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCarePlanRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	carePlanController *controllers.CarePlanController,
	planOptionsController *controllers.PlanOptionsController,
) {
	router.With(middlewares.Authenticate).Post("/", carePlanController.CreateCarePlan)
	router.With(middlewares.Authenticate).Post("/options", planOptionsController.GenerateOptions)
	router.With(middlewares.Authenticate).Get("/clients/{clientID}", carePlanController.FindCarePlansByClientID)
	router.With(middlewares.Authenticate).Get("/{carePlanID}", carePlanController.FindCarePlanByID)
	router.With(middlewares.Authenticate).Patch("/{carePlanID}", carePlanController.UpdateCarePlan)
	router.With(middlewares.Authenticate).Post("/{carePlanID}/approve", carePlanController.ApproveCarePlan)
	router.With(middlewares.Authenticate).Patch("/{carePlanID}/status", carePlanController.UpdateCarePlanStatus)
	router.With(middlewares.Authenticate).Get("/{carePlanID}/history", carePlanController.GetCarePlanHistory)
	router.With(middlewares.Authenticate).Delete("/{carePlanID}", carePlanController.DeleteCarePlan)
}
