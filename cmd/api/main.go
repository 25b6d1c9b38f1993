package main

import (
	"fmt"
	"net/http"

	"github.com/iws-manager/iws-backend-go/internal/config"
	appHTTP "github.com/iws-manager/iws-backend-go/internal/handler/http"
	"github.com/iws-manager/iws-backend-go/internal/pkg/database"
	"github.com/iws-manager/iws-backend-go/internal/repository/postgresql"
	absenceService "github.com/iws-manager/iws-backend-go/internal/service/absence"
	calendarService "github.com/iws-manager/iws-backend-go/internal/service/calendar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	holidayRepo := postgresql.NewPublicHolidayRepository(db)
	stateRepo := postgresql.NewStateRepository(db)
	stateHolidayRepo := postgresql.NewStateHolidayRepository(db)
	absenceDayRepo := postgresql.NewAbsenceDayRepository(db)
	absenceTypeRepo := postgresql.NewAbsenceTypeRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	calendarSvc := calendarService.NewCalendarService(db, holidayRepo, stateRepo, stateHolidayRepo)
	absenceSvc := absenceService.NewAbsenceService(db, absenceDayRepo, absenceTypeRepo, employeeRepo, holidayRepo)

	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)

	router := appHTTP.NewRouter(calendarHandler, absenceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
