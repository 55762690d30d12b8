package main

import (
	"fmt"
	"net/http"

	"github.com/kensetsu-apps/works-backend-go/internal/config"
	appHTTP "github.com/kensetsu-apps/works-backend-go/internal/handler/http"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/database"
	"github.com/kensetsu-apps/works-backend-go/internal/pkg/jwt"
	"github.com/kensetsu-apps/works-backend-go/internal/repository/postgresql"
	authService "github.com/kensetsu-apps/works-backend-go/internal/service/auth"
	clientService "github.com/kensetsu-apps/works-backend-go/internal/service/client"
	employeeService "github.com/kensetsu-apps/works-backend-go/internal/service/employee"
	payrollService "github.com/kensetsu-apps/works-backend-go/internal/service/payroll"
	saleService "github.com/kensetsu-apps/works-backend-go/internal/service/sale"
	siteService "github.com/kensetsu-apps/works-backend-go/internal/service/site"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	saleRepo := postgresql.NewSaleRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	rateSource := postgresql.NewRateSource(db)
	assignmentSource := postgresql.NewAssignmentSource(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	clientSvc := clientService.NewClientService(db, clientRepo)
	siteSvc := siteService.NewSiteService(db, siteRepo, clientRepo, employeeRepo)
	saleSvc := saleService.NewSaleService(db, saleRepo, clientRepo, siteRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, rateSource, assignmentSource)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	clientHandler := appHTTP.NewClientHandler(clientSvc)
	siteHandler := appHTTP.NewSiteHandler(siteSvc)
	saleHandler := appHTTP.NewSaleHandler(saleSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, FrontendURL: cfg.App.FrontendURL},
		jwtSvc,
		authHandler,
		employeeHandler,
		clientHandler,
		siteHandler,
		saleHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
