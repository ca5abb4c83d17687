package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/scriptoria/internal/api"
	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dmitrijs2005/scriptoria/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	emailKey ctxKey = "email"
	tokenKey ctxKey = "token"
)

// requiresSession reports whether method needs a logged-in caller. Logout
// does not: it succeeds for revoked, expired and missing tokens alike.
func requiresSession(method string) bool {
	if !strings.HasPrefix(method, "/"+api.Scriptoria_ServiceDesc.ServiceName+"/") {
		return false
	}
	switch method {
	case api.Scriptoria_SignUp_FullMethodName, api.Scriptoria_Login_FullMethodName, api.Scriptoria_Logout_FullMethodName:
		return false
	}
	return true
}

func tokenFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// accessTokenInterceptor resolves the session behind the access_token
// metadata and puts the caller's email into the context. Public methods
// still see the raw token when one was sent.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	token := tokenFromMetadata(ctx)

	if !requiresSession(info.FullMethod) {
		if token != "" {
			ctx = context.WithValue(ctx, tokenKey, token)
		}
		return handler(ctx, req)
	}

	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	email, err := s.users.Authenticate(ctx, token)
	if err != nil {
		return nil, toStatus(err)
	}

	ctx = logging.WithAccount(ctx, email)
	ctx = context.WithValue(ctx, emailKey, email)
	ctx = context.WithValue(ctx, tokenKey, token)
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	started := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "elapsed", time.Since(started))
	return resp, err
}

func emailFrom(ctx context.Context) (string, error) {
	email, _ := ctx.Value(emailKey).(string)
	if email == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return email, nil
}
