package http

import (
	"log/slog"
	"os"

	"github.com/epitome-prod/callsheet-backend-go/internal/handler/http/middleware"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	authHandler AuthHandler,
	projectHandler ProjectHandler,
	callSheetHandler CallSheetHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "epitome-callsheets"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Route("/callback", func(r chi.Router) {
					r.Get("/google", authHandler.OAuthCallbackGoogle)
				})
			})
		})

		// Public RSVP confirmation reached from email links
		r.Post("/rsvp/{token}", callSheetHandler.ConfirmRSVP)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/synthesize", callSheetHandler.Synthesize)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Post("/generate", projectHandler.Generate)
				r.Get("/progress", projectHandler.Progress)

				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/", projectHandler.GetByID)
					r.Put("/", projectHandler.Update)
					r.Delete("/", projectHandler.Delete)
					r.Get("/call-sheets", callSheetHandler.ListByProject)
				})
			})

			r.Route("/call-sheets/{callSheetID}", func(r chi.Router) {
				r.Get("/", callSheetHandler.GetByID)
				r.Get("/day-sheet", callSheetHandler.GetDaySheet)
				r.Put("/", callSheetHandler.Update)
				r.Post("/send", callSheetHandler.Send)
				r.Get("/rsvps", callSheetHandler.ListRSVPs)
			})
		})
	})
	return r
}
