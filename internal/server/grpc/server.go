package grpc

import (
	"context"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	pb "github.com/dmitrijs2005/commpro-auth/internal/proto"
	"github.com/dmitrijs2005/commpro-auth/internal/server/auth"
	"github.com/dmitrijs2005/commpro-auth/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	users   *services.UserService
	issuer  *auth.TokenIssuer
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, issuer *auth.TokenIssuer) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		issuer:  issuer,
	}
}

// newServer builds the grpc.Server with interceptors, the auth service and
// the standard health service.
func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)

	pb.RegisterAuthServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
