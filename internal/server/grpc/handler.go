package grpc

import (
	"context"

	"github.com/dmitrijs2005/scriptoria/internal/api"
	"github.com/dmitrijs2005/scriptoria/internal/server/dto"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
	"github.com/dmitrijs2005/scriptoria/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toRecord(g *models.Generation, withContent bool) *api.Record {
	r := &api.Record{Id: g.ID, Title: g.Title, Language: g.Language, CreatedAt: timestamppb.New(g.CreatedAt)}
	if withContent {
		r.Content = g.Content
	}
	return r
}

func (s *GRPCServer) SignUp(ctx context.Context, req *api.SignUpRequest) (*api.SignUpResponse, error) {
	u, err := s.users.SignUp(ctx, dto.SignUpRequest{
		UserName:        req.GetUsername(),
		Email:           req.GetEmail(),
		Password:        req.GetPassword(),
		ConfirmPassword: req.GetConfirmPassword(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.SignUpResponse{Username: u.UserName, Email: u.Email}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	sess, err := s.users.Login(ctx, dto.LoginRequest{Email: req.GetEmail(), Password: req.GetPassword()})
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.LoginResponse{
		AccessToken: sess.Token,
		Email:       sess.Email,
		Username:    sess.UserName,
		ExpiresAt:   timestamppb.New(sess.ExpiresAt),
	}, nil
}

// Logout revokes the caller's session when a token was sent. It never fails.
func (s *GRPCServer) Logout(ctx context.Context, _ *api.LogoutRequest) (*api.LogoutResponse, error) {
	if token, _ := ctx.Value(tokenKey).(string); token != "" {
		s.users.Logout(ctx, token)
	}
	return &api.LogoutResponse{}, nil
}

func (s *GRPCServer) Generate(ctx context.Context, req *api.GenerateRequest) (*api.GenerateResponse, error) {
	email, err := emailFrom(ctx)
	if err != nil {
		return nil, err
	}

	g, err := s.generations.Generate(ctx, email, dto.GenerationRequest{Title: req.GetTitle(), Idea: req.GetIdea(), Language: req.GetLanguage()})
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.GenerateResponse{Record: toRecord(g, true)}, nil
}

func (s *GRPCServer) History(ctx context.Context, req *api.HistoryRequest) (*api.HistoryResponse, error) {
	email, err := emailFrom(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.history.List(ctx, email)
	if err != nil {
		return nil, toStatus(err)
	}
	if limit := int(req.GetLimit()); limit > 0 {
		list = services.Latest(list, limit)
	}

	resp := &api.HistoryResponse{Records: make([]*api.Record, 0, len(list))}
	for i := range list {
		resp.Records = append(resp.Records, toRecord(&list[i], false))
	}
	return resp, nil
}

func (s *GRPCServer) Get(ctx context.Context, req *api.GetRequest) (*api.GetResponse, error) {
	email, err := emailFrom(ctx)
	if err != nil {
		return nil, err
	}

	g, err := s.history.Get(ctx, email, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.GetResponse{Record: toRecord(g, true)}, nil
}

func (s *GRPCServer) Export(ctx context.Context, req *api.ExportRequest) (*api.ExportResponse, error) {
	email, err := emailFrom(ctx)
	if err != nil {
		return nil, err
	}

	f, err := s.exports.Export(ctx, email, req.GetId(), req.GetFormat())
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.ExportResponse{FileName: f.Name, ContentType: f.ContentType, Data: f.Data, Url: f.URL}, nil
}
