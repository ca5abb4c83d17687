package web

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dmitrijs2005/scriptoria/internal/server/dto"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
	"github.com/dmitrijs2005/scriptoria/internal/server/services"
	"github.com/go-chi/chi/v5"
)

const (
	noticeExpired   = "expired"
	noticeSignedUp  = "signedup"
	noticeLoggedOut = "loggedout"
)

var notices = map[string]string{
	noticeExpired:   "Your session has expired. Please log in again.",
	noticeSignedUp:  "Account created. Please log in.",
	noticeLoggedOut: "You have been logged out.",
}

// page is the data every template receives.
type page struct {
	Email  string
	Notice string
	Error  string

	LoginEmail  string
	SignupError string
	SignupName  string
	SignupEmail string

	Languages []string
	Form      dto.GenerationRequest
	Recent    []models.Generation

	Output *models.Generation
	HTML   template.HTML
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		if _, err := s.users.Authenticate(r.Context(), token); err == nil {
			http.Redirect(w, r, "/workspace", http.StatusSeeOther)
			return
		}
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login", &page{Notice: notices[r.URL.Query().Get("notice")]})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	req := dto.LoginRequest{Email: r.FormValue("email"), Password: r.FormValue("password")}

	sess, err := s.users.Login(r.Context(), req)
	if err != nil {
		status, msg := userError(err)
		s.render(w, r, status, "login", &page{Error: msg, LoginEmail: req.Email})
		return
	}

	setSessionCookie(w, sess.Token, sess.ExpiresAt)
	http.Redirect(w, r, "/workspace", http.StatusSeeOther)
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	req := dto.SignUpRequest{
		UserName:        r.FormValue("username"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	if _, err := s.users.SignUp(r.Context(), req); err != nil {
		status, msg := userError(err)
		s.render(w, r, status, "login", &page{SignupError: msg, SignupName: req.UserName, SignupEmail: req.Email})
		return
	}

	http.Redirect(w, r, "/login?notice="+noticeSignedUp, http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		s.users.Logout(r.Context(), token)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login?notice="+noticeLoggedOut, http.StatusSeeOther)
}

// workspace renders the generation form with the newest history entries.
func (s *Server) workspace(w http.ResponseWriter, r *http.Request, status int, p *page) {
	email := emailFrom(r.Context())

	list, err := s.history.List(r.Context(), email)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	p.Email = email
	p.Languages = dto.Languages
	p.Recent = services.Latest(list, common.HistoryDisplayLimit)
	if p.Form.Language == "" {
		p.Form.Language = dto.LanguageEnglish
	}
	s.render(w, r, status, "workspace", p)
}

func (s *Server) handleWorkspace(w http.ResponseWriter, r *http.Request) {
	s.workspace(w, r, http.StatusOK, &page{})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req := dto.GenerationRequest{
		Title:    r.FormValue("title"),
		Idea:     r.FormValue("idea"),
		Language: r.FormValue("language"),
	}

	g, err := s.generations.Generate(r.Context(), emailFrom(r.Context()), req)
	if err != nil {
		status, msg := userError(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error(r.Context(), "generation failed", "error", err)
		}
		s.workspace(w, r, status, &page{Error: msg, Form: req})
		return
	}

	s.output(w, r, g)
}

func (s *Server) handleOutput(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.renderError(w, r, common.ErrorNotFound)
		return
	}

	g, err := s.history.Get(r.Context(), emailFrom(r.Context()), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.output(w, r, g)
}

func (s *Server) output(w http.ResponseWriter, r *http.Request, g *models.Generation) {
	html, err := s.renderMarkdown(g.Content)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "output", &page{Email: emailFrom(r.Context()), Output: g, HTML: html})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.renderError(w, r, common.ErrorNotFound)
		return
	}

	f, err := s.exports.Export(r.Context(), emailFrom(r.Context()), id, chi.URLParam(r, "format"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+f.Name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	_, _ = w.Write(f.Data)
}
