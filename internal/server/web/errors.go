package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/scriptoria/internal/common"
)

// userError picks the status and the message shown for a service error.
func userError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return http.StatusConflict, common.ErrDuplicateEmail.Error()
	case errors.Is(err, common.ErrWeakPassword),
		errors.Is(err, common.ErrPasswordMismatch),
		errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, common.ErrInvalidCredentials.Error()
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, common.ErrorNotFound.Error()
	case errors.Is(err, common.ErrInfrastructure):
		return http.StatusServiceUnavailable, common.ErrInfrastructure.Error()
	default:
		return http.StatusInternalServerError, common.ErrorInternal.Error()
	}
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := userError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	s.render(w, r, status, "error", &page{Email: emailFrom(r.Context()), Error: msg})
}
