package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(calendarHandler CalendarHandler, absenceHandler AbsenceHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "iws-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", calendarHandler.GetCalendar)
			r.Get("/weekends", calendarHandler.GetWeekends)
			r.Get("/{year}", calendarHandler.GetCalendarForYear)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", calendarHandler.ListHolidays)
			r.Get("/range", calendarHandler.ListHolidaysInRange)
			r.Post("/", calendarHandler.CreateHoliday)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", calendarHandler.GetHoliday)
				r.Put("/", calendarHandler.UpdateHoliday)
				r.Delete("/", calendarHandler.DeleteHoliday)
				r.Get("/states", calendarHandler.GetHolidaySelection)
				r.Put("/states", calendarHandler.SaveHolidaySelection)
			})
		})

		r.Get("/states", calendarHandler.ListStates)
		r.Get("/absence-types", absenceHandler.ListAbsenceTypes)

		r.Route("/absences", func(r chi.Router) {
			r.Get("/", absenceHandler.ListAbsences)
			r.Post("/", absenceHandler.CreateAbsence)
			r.Post("/bulk", absenceHandler.CreateBulkAbsences)
			r.Get("/counts", absenceHandler.CountAbsencesByType)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", absenceHandler.GetAbsence)
				r.Put("/", absenceHandler.UpdateAbsence)
				r.Delete("/", absenceHandler.DeleteAbsence)
			})
		})
	})

	return r
}
