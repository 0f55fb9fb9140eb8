package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/epitome-prod/callsheet-backend-go/internal/config"
	appHTTP "github.com/epitome-prod/callsheet-backend-go/internal/handler/http"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/database"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/email"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/enrichment"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/jwt"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/oauth"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/sse"
	"github.com/epitome-prod/callsheet-backend-go/internal/repository/postgresql"
	authService "github.com/epitome-prod/callsheet-backend-go/internal/service/auth"
	callSheetService "github.com/epitome-prod/callsheet-backend-go/internal/service/callsheet"
	projectService "github.com/epitome-prod/callsheet-backend-go/internal/service/project"
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
	projectRepo := postgresql.NewProjectRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	crewRepo := postgresql.NewCrewRepository(db)
	callSheetRepo := postgresql.NewCallSheetRepository(db)
	rsvpRepo := postgresql.NewRSVPRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	enricher := enrichment.NewService(cfg.GoogleMaps.APIKey)
	hub := sse.NewHub()

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	confirmURL := fmt.Sprintf("%s/rsvp", cfg.App.FrontendURL)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	callSheetSvc := callSheetService.NewCallSheetService(db, callSheetRepo, rsvpRepo, crewRepo, projectRepo, emailService, confirmURL)
	projectSvc := projectService.NewProjectService(db, projectRepo, locationRepo, crewRepo, callSheetRepo, enricher, hub)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	projectHandler := appHTTP.NewProjectHandler(projectSvc, hub)
	callSheetHandler := appHTTP.NewCallSheetHandler(callSheetSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.FrontendURL,
		authHandler,
		projectHandler,
		callSheetHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
