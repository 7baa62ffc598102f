package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/loanbridge/origination-service/pkg/auth"
	"github.com/loanbridge/origination-service/pkg/tlsutil"
)

// Server wraps a gRPC server with the origination handler registered.
type Server struct {
	gs      *grpc.Server
	handler *OriginationHandler
	logger  *slog.Logger
}

// TLSOptions configures transport security for the gRPC listener.
type TLSOptions struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

// NewServer creates and configures the gRPC server. When TLS is enabled and
// the credentials cannot be loaded it returns an error rather than silently
// serving plaintext.
func NewServer(handler *OriginationHandler, logger *slog.Logger, jwtService *auth.JWTService, tlsOpts TLSOptions) (*Server, error) {
	// Add auth interceptor, skipping health check methods.
	authInterceptor := auth.UnaryAuthInterceptor(jwtService, []string{
		"/grpc.health.v1.Health/Check",
		"/grpc.health.v1.Health/Watch",
	})

	var serverOpts []grpc.ServerOption
	serverOpts = append(serverOpts, grpc.ChainUnaryInterceptor(authInterceptor, roleGuard()))

	if tlsOpts.Enabled {
		creds, err := tlsutil.ServerTLSConfig(tlsOpts.CertFile, tlsOpts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load TLS credentials: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
		logger.Info("gRPC TLS enabled", "cert", tlsOpts.CertFile, "key", tlsOpts.KeyFile)
	} else {
		logger.Info("gRPC TLS not configured, running without TLS")
	}

	gs := grpc.NewServer(serverOpts...)

	// Register gRPC health check.
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(gs, healthSrv)
	healthSrv.SetServingStatus("origination-service", healthpb.HealthCheckResponse_SERVING)

	// Only enable reflection when GRPC_REFLECTION=true.
	if os.Getenv("GRPC_REFLECTION") == "true" {
		reflection.Register(gs)
	}

	// Register the OriginationService server.
	RegisterOriginationServiceServer(gs, handler)

	return &Server{
		gs:      gs,
		handler: handler,
		logger:  logger,
	}, nil
}

// roleGuard enforces per-method role requirements. Methods not listed only
// need a valid token.
func roleGuard() grpc.UnaryServerInterceptor {
	methodRoles := map[string][]string{
		"/loanbridge.origination.v1.OriginationService/DisburseLoan": {auth.RoleAdmin, auth.RoleLoanOfficer},
		"/loanbridge.origination.v1.OriginationService/MakePayment":  {auth.RoleAdmin, auth.RoleLoanOfficer},
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		roles, ok := methodRoles[info.FullMethod]
		if !ok {
			return handler(ctx, req)
		}
		return auth.RequireRole(roles...)(ctx, req, info, handler)
	}
}

// Serve starts the gRPC server on the specified address.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	s.logger.Info("gRPC server listening", "addr", addr)
	return s.gs.Serve(lis)
}

// GracefulStop stops the server gracefully.
func (s *Server) GracefulStop() {
	s.logger.Info("gRPC server shutting down")
	s.gs.GracefulStop()
}
