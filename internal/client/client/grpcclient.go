package client

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/scriptoria/internal/api"
	"github.com/dmitrijs2005/scriptoria/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.ScriptoriaClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewScriptoriaClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewScriptoriaClient(conn)
	return c, nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) SignUp(ctx context.Context, userName, email string, password, confirm []byte) error {
	_, err := s.client.SignUp(ctx, &api.SignUpRequest{
		Username:        userName,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	return mapError(err)
}

// Login replaces any held session with a new one.
func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (*api.LoginResponse, error) {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, mapError(err)
	}
	s.setToken(resp.AccessToken)
	return resp, nil
}

// Logout drops the local token even when the server cannot be reached.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if s.token() == "" {
		return nil
	}
	_, err := s.client.Logout(ctx, &api.LogoutRequest{})
	s.setToken("")
	return mapError(err)
}

func (s *GRPCClient) Generate(ctx context.Context, title, idea, language string) (*api.Record, error) {
	resp, err := s.client.Generate(ctx, &api.GenerateRequest{Title: title, Idea: idea, Language: language})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetRecord(), nil
}

func (s *GRPCClient) History(ctx context.Context, limit int) ([]*api.Record, error) {
	resp, err := s.client.History(ctx, &api.HistoryRequest{Limit: int32(limit)})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetRecords(), nil
}

func (s *GRPCClient) Get(ctx context.Context, id int64) (*api.Record, error) {
	resp, err := s.client.Get(ctx, &api.GetRequest{Id: id})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.GetRecord(), nil
}

func (s *GRPCClient) Export(ctx context.Context, id int64, format string) (*api.ExportResponse, error) {
	resp, err := s.client.Export(ctx, &api.ExportRequest{Id: id, Format: format})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}
