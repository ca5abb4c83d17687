// Package grpc exposes the Scriptoria services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/scriptoria/internal/api"
	"github.com/dmitrijs2005/scriptoria/internal/logging"
	"github.com/dmitrijs2005/scriptoria/internal/server/dto"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
	"github.com/dmitrijs2005/scriptoria/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Users is the account and session side used by the handlers.
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

type GRPCServer struct {
	api.UnimplementedScriptoriaServer

	address     string
	users       Users
	generations Generations
	history     History
	exports     Exports
	logger      logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us Users, gs Generations, hs History, es Exports) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       us,
		generations: gs,
		history:     hs,
		exports:     es,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	api.RegisterScriptoriaServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(api.Scriptoria_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	err := srv.Serve(lis)
	cancel()
	<-stopped
	if err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}
