package routers

import (
	"revolucare-service/internal/app/delivery/http/controllers"
	"revolucare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	documentController *controllers.DocumentController,
) {
	router.With(middlewares.Authenticate).Post("/", documentController.UploadDocument)
	router.With(middlewares.Authenticate).Get("/owners/{ownerID}", documentController.FindDocumentsByOwnerID)
	router.With(middlewares.Authenticate).Get("/{documentID}", documentController.FindDocumentByID)
	router.With(middlewares.Authenticate).Get("/{documentID}/download", documentController.GetDownloadURL)
	router.With(middlewares.Authenticate).Delete("/{documentID}", documentController.DeleteDocument)
}

func attachAnalysisRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	documentController *controllers.DocumentController,
) {
	router.With(middlewares.Authenticate).Post("/", documentController.AnalyzeDocument)
	router.With(middlewares.Authenticate).Get("/{analysisID}", documentController.GetAnalysis)
}
