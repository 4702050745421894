// Package health runs the gRPC health service (grpc.health.v1) next to the
// HTTP API so orchestrators can probe the server.
package health

import (
	"context"
	"net"

	"github.com/dmitrijs2005/feedbackhub/internal/logging"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service name reported alongside the overall ("") status.
const ServiceName = "feedbackhub"

type Server struct {
	address string
	logger  logging.Logger
	health  *grpchealth.Server
}

func NewServer(address string, l logging.Logger) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "health_server"),
		health:  grpchealth.NewServer(),
	}
}

// SetServing flips the reported status of both the overall server and ServiceName.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve reports SERVING on lis until ctx is cancelled, then flips to
// NOT_SERVING and stops gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)
	s.SetServing(true)

	stopped := make(chan struct{})
	stopDone := make(chan struct{})
	go func() {
		defer close(stopDone)
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		s.logger.Info(ctx, "Stopping gRPC health server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC health server", "address", lis.Addr().String())

	err := srv.Serve(lis)
	close(stopped)
	<-stopDone
	return err
}
