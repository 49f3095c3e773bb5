package probe

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported for the alarm API.
// The empty name reports overall server health.
const ServiceName = "alarmstats.v1.AlarmStats"

// errNotStarted is returned when Serve is called on a closed server.
var errNotStarted = errors.New("probe server not initialised")

// Server exposes grpc.health.v1.Health for liveness and readiness probes.
type Server struct {
	// grpcServer handles the health RPCs.
	grpcServer *grpc.Server
	// health tracks serving status per service.
	health *health.Server
	// listener is the bound TCP listener.
	listener net.Listener
}

// Listen binds address and prepares a health server reporting NOT_SERVING
// until SetServing is called.
func Listen(ctx context.Context, address string) (*Server, error) {
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthSrv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)

	return &Server{
		grpcServer: grpcServer,
		health:     healthSrv,
		listener:   lis,
	}, nil
}

// SetServing reports the alarm API as serving or not serving.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve handles health RPCs until Shutdown is called.
func (s *Server) Serve() error {
	if s.grpcServer == nil || s.listener == nil {
		return errNotStarted
	}

	if err := s.grpcServer.Serve(s.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// Shutdown stops gracefully, falling back to Stop when ctx expires.
func (s *Server) Shutdown(ctx context.Context) {
	s.health.Shutdown()

	stopped := make(chan struct{})

	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		s.grpcServer.Stop()
	case <-stopped:
	}
}

// Address returns the bound listener address.
func (s *Server) Address() string {
	return s.listener.Addr().String()
}
