// Package web serves the browser workspace: login and signup forms, the
// generation form, history and downloads.
package web

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/scriptoria/internal/logging"
	"github.com/dmitrijs2005/scriptoria/internal/server/dto"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
	"github.com/dmitrijs2005/scriptoria/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Users interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (*models.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*services.Session, error)
	Authenticate(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string)
}

type Generations interface {
	Generate(ctx context.Context, ownerEmail string, req dto.GenerationRequest) (*models.Generation, error)
}

type History interface {
	List(ctx context.Context, ownerEmail string) ([]models.Generation, error)
	Get(ctx context.Context, ownerEmail string, id int64) (*models.Generation, error)
}

type Exports interface {
	Export(ctx context.Context, ownerEmail string, id int64, format string) (*services.ExportedFile, error)
}

type Server struct {
	address     string
	users       Users
	generations Generations
	history     History
	exports     Exports
	logger      logging.Logger

	tmpl     map[string]*template.Template
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

func NewServer(a string, l logging.Logger, us Users, gs Generations, hs History, es Exports) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &Server{
		address:     a,
		logger:      l.With("module", "web_server"),
		users:       us,
		generations: gs,
		history:     hs,
		exports:     es,
		tmpl:        tmpl,
		markdown:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:      bluemonday.UGCPolicy(),
	}, nil
}

// Handler returns the routed application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/login", s.handleLoginPage)
	r.Post("/login", s.handleLogin)
	r.Post("/signup", s.handleSignUp)
	r.Post("/logout", s.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/workspace", s.handleWorkspace)
		r.Post("/generate", s.handleGenerate)
		r.Get("/outputs/{id}", s.handleOutput)
		r.Get("/outputs/{id}/export/{format}", s.handleExport)
	})

	return r
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
