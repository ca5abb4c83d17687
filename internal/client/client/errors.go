package client

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrUnavailable = errors.New("server unavailable")

// RemoteError is a request the server rejected. Kind is one of the common
// sentinel errors; Message is what the server said.
type RemoteError struct {
	Kind    error
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

func (e *RemoteError) Unwrap() error { return e.Kind }

// mapError turns a gRPC status into a RemoteError or ErrUnavailable.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	msg := st.Message()
	remote := func(kind error) error { return &RemoteError{Kind: kind, Message: msg} }

	switch st.Code() {
	case codes.AlreadyExists:
		return remote(common.ErrDuplicateEmail)
	case codes.InvalidArgument:
		switch {
		case strings.HasPrefix(msg, common.ErrWeakPassword.Error()):
			return remote(common.ErrWeakPassword)
		case msg == common.ErrPasswordMismatch.Error():
			return remote(common.ErrPasswordMismatch)
		default:
			return remote(common.ErrInvalidInput)
		}
	case codes.NotFound:
		return remote(common.ErrorNotFound)
	case codes.Unauthenticated:
		switch msg {
		case common.ErrTokenExpired.Error():
			return remote(common.ErrTokenExpired)
		case common.ErrInvalidCredentials.Error():
			return remote(common.ErrInvalidCredentials)
		default:
			return remote(common.ErrorUnauthorized)
		}
	case codes.Unavailable:
		if msg == common.ErrInfrastructure.Error() {
			return remote(common.ErrInfrastructure)
		}
		return ErrUnavailable
	case codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return remote(common.ErrorInternal)
	}
}
