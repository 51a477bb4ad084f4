package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kevinpineda22/backend-horarios-sub000/internal/config"
	appHTTP "github.com/kevinpineda22/backend-horarios-sub000/internal/handler/http"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/pkg/database"
	"github.com/kevinpineda22/backend-horarios-sub000/internal/repository/postgresql"
	bankService "github.com/kevinpineda22/backend-horarios-sub000/internal/service/bank"
	employeeService "github.com/kevinpineda22/backend-horarios-sub000/internal/service/employee"
	noveltyService "github.com/kevinpineda22/backend-horarios-sub000/internal/service/novelty"
	scheduleService "github.com/kevinpineda22/backend-horarios-sub000/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	observationRepo := postgresql.NewObservationRepository(db)
	weekRepo := postgresql.NewWeekRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	employees := employeeService.NewEmployeeService(employeeRepo)
	novelties := noveltyService.NewNoveltyService(observationRepo)
	banking := bankService.NewBankService(db, entryRepo)
	schedules := scheduleService.NewScheduleService(
		db,
		weekRepo,
		employeeRepo,
		holidayRepo,
		novelties,
		banking,
		cfg.App.CountryCode,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(employees, novelties)
	scheduleHandler := appHTTP.NewScheduleHandler(schedules)
	bankHandler := appHTTP.NewBankHandler(banking)
	holidayHandler := appHTTP.NewHolidayHandler(holidayRepo, cfg.App.CountryCode)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			AppName:        "backend-horarios",
			Env:            cfg.App.Env,
		},
		employeeHandler,
		scheduleHandler,
		bankHandler,
		holidayHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
