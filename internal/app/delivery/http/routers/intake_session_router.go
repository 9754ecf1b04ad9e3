package routers

import (
	"fmt"

	"intake-service/internal/app/delivery/http/controllers"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachQuestionRoutes(router chi.Router, intakeSessionController *controllers.IntakeSessionController) {
	router.Get("/", intakeSessionController.ListQuestions)
}

func attachIntakeSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, intakeSessionController *controllers.IntakeSessionController) {
	router.Post("/", intakeSessionController.CreateSession)

	router.Route(fmt.Sprintf("/{%s}", constvars.URLParamSessionID), func(r chi.Router) {
		r.Use(middlewares.RequireSessionToken)

		r.Get("/", intakeSessionController.GetSession)
		r.Delete("/", intakeSessionController.DeleteSession)
		r.Get("/document", intakeSessionController.GetDocument)

		r.Put(fmt.Sprintf("/answers/{%s}", constvars.URLParamQuestionID), intakeSessionController.AnswerQuestion)
		r.Put(fmt.Sprintf("/other-notes/{%s}", constvars.URLParamQuestionID), intakeSessionController.UpdateOtherNote)

		r.Post("/next", intakeSessionController.Next)
		r.Post("/previous", intakeSessionController.Previous)
		r.Post("/finish", intakeSessionController.Finish)
		r.Post("/restart", intakeSessionController.Restart)
	})
}
