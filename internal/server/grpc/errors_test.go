package grpc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"duplicate", common.ErrDuplicateEmail, codes.AlreadyExists, common.ErrDuplicateEmail.Error()},
		{"weak", fmt.Errorf("%w: needs a digit", common.ErrWeakPassword), codes.InvalidArgument, "password does not meet the strength requirements: needs a digit"},
		{"mismatch", common.ErrPasswordMismatch, codes.InvalidArgument, common.ErrPasswordMismatch.Error()},
		{"invalid input", common.ErrInvalidInput, codes.InvalidArgument, common.ErrInvalidInput.Error()},
		{"credentials", common.ErrInvalidCredentials, codes.Unauthenticated, common.ErrInvalidCredentials.Error()},
		{"expired", common.ErrTokenExpired, codes.Unauthenticated, common.ErrTokenExpired.Error()},
		{"unauthorized", common.ErrorUnauthorized, codes.Unauthenticated, common.ErrorUnauthorized.Error()},
		{"bad token", common.ErrInvalidToken, codes.Unauthenticated, common.ErrorUnauthorized.Error()},
		{"not found", common.ErrorNotFound, codes.NotFound, common.ErrorNotFound.Error()},
		{"infra hides details", fmt.Errorf("%w: db: disk full", common.ErrInfrastructure), codes.Unavailable, common.ErrInfrastructure.Error()},
		{"other", errors.New("boom"), codes.Internal, common.ErrorInternal.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(toStatus(tt.err))
			assert.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}
