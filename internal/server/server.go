package server

import (
	"database/sql"
	"fmt"
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"tajobs/internal/config"
	"tajobs/internal/handlers"
	authh "tajobs/internal/handlers/auth"
	jobh "tajobs/internal/handlers/job"
	userh "tajobs/internal/handlers/user"
	"tajobs/internal/mailer"
	"tajobs/internal/middleware"
	"tajobs/internal/store"
)

type Server struct {
	Addr  string
	Users store.UserStore
	Jobs  store.JobStore
	Mail  mailer.Mailer
	Cfg   *config.Config
}

func NewServer(db *sql.DB, mail mailer.Mailer, cfg *config.Config) *Server {
	return &Server{
		Addr:  ":" + cfg.Port,
		Users: store.NewMySQLUserStore(db),
		Jobs:  store.NewMySQLJobStore(db),
		Mail:  mail,
		Cfg:   cfg,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(logger.Logger("router", log.StandardLogger()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.Cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, "TA placement API is running")
	})
	r.Get("/health", handlers.HealthCheck)

	// public
	r.Post("/signup", HandlerFunc(&authh.SignupHandler{Users: s.Users, Mail: s.Mail, JWTSecret: s.Cfg.JWTSecret}))
	r.Post("/login", HandlerFunc(&authh.LoginHandler{Users: s.Users, JWTSecret: s.Cfg.JWTSecret}))
	r.Post("/logout", HandlerFunc(&authh.LogoutHandler{}))
	r.Post("/verify-email", HandlerFunc(&authh.VerifyEmailHandler{Users: s.Users, Mail: s.Mail}))
	r.Post("/forgot-password", HandlerFunc(&authh.ForgotPasswordHandler{Users: s.Users, Mail: s.Mail, FrontendURL: s.Cfg.FrontendURL}))
	r.Post("/reset-password/{token}", HandlerFunc(&authh.ResetPasswordHandler{Users: s.Users, Mail: s.Mail}))
	r.Post("/add-job", HandlerFunc(&jobh.AddJobHandler{Jobs: s.Jobs}))
	r.Get("/jobs", HandlerFunc(&jobh.ListJobsHandler{Jobs: s.Jobs}))
	r.Get("/jobs/{id}", HandlerFunc(&jobh.GetJobHandler{Jobs: s.Jobs}))

	// session-gated
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(s.Cfg.JWTSecret))

		r.Get("/verify-email/{token}", HandlerFunc(&authh.CheckAuthHandler{Users: s.Users}))
		r.Get("/verify", HandlerFunc(&authh.VerifyHandler{Users: s.Users}))
		r.Put("/update-profile", HandlerFunc(&userh.UpdateProfileHandler{Users: s.Users}))
		r.Get("/profile/{userId}", HandlerFunc(&userh.GetProfileHandler{Users: s.Users}))
		r.Get("/profile", HandlerFunc(&userh.MyProfileHandler{Users: s.Users}))

		r.Post("/jobs/{id}/apply", HandlerFunc(&jobh.ApplyHandler{Jobs: s.Jobs}))
		r.Get("/jobs/{id}/check-application", HandlerFunc(&jobh.CheckApplicationHandler{Jobs: s.Jobs}))
		r.Get("/my-posts", HandlerFunc(&jobh.MyPostsHandler{Jobs: s.Jobs}))
		r.Get("/my-applications", HandlerFunc(&jobh.MyApplicationsHandler{Jobs: s.Jobs}))
		r.Put("/edit-job/{id}", HandlerFunc(&jobh.EditJobHandler{Jobs: s.Jobs}))
		r.Delete("/delete-job/{id}", HandlerFunc(&jobh.DeleteJobHandler{Jobs: s.Jobs}))
	})

	return r
}

func (s *Server) Run() error {
	log.Infof("Server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Router())
}
