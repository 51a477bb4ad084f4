package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	AllowedOrigins []string
	AppName        string
	Env            string
}

func NewRouter(
	cfg RouterConfig,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	bankHandler BankHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees/{employeeID}", func(r chi.Router) {
			r.Get("/", employeeHandler.GetEmployee)
			r.Get("/novedades", employeeHandler.ListNovedades)

			r.Route("/horarios", func(r chi.Router) {
				r.Post("/generar", scheduleHandler.GenerateSchedules)
				r.Get("/", scheduleHandler.ListSchedules)
			})

			r.Route("/banco", func(r chi.Router) {
				r.Get("/", bankHandler.GetLedger)
				r.Post("/aplicar", bankHandler.ApplyHours)
			})
		})

		r.Route("/horarios/{weekID}", func(r chi.Router) {
			r.Get("/", scheduleHandler.GetSchedule)
			r.Put("/", scheduleHandler.EditSchedule)
			r.Delete("/", scheduleHandler.DeleteSchedule)
		})

		r.Post("/banco/{entryID}/anular", bankHandler.AnnulEntry)

		r.Get("/festivos", holidayHandler.ListHolidays)
	})

	return r
}
