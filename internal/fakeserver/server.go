// Package fakeserver is an in-process model server for tests. It serves the
// JSON API and the jams_v1.ModelServer gRPC service on one port.
package fakeserver

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	jams "github.com/Meesho/BharatMLStack/modelserver-client/pkg/clients/modelserver/client/grpc"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/soheilhy/cmux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

const serviceName = "fake-model-server"

type Server struct {
	store      *store
	listener   net.Listener
	mux        cmux.CMux
	grpcServer *grpc.Server
	httpServer *http.Server
	closeOnce  sync.Once
}

// Start listens on a random local port and serves until Close.
func Start() (*Server, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s := &Server{
		store:      newStore(),
		listener:   listener,
		mux:        cmux.New(listener),
		grpcServer: grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler())),
	}
	jams.RegisterModelServerServer(s.grpcServer, &grpcHandler{store: s.store})

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(otelgin.Middleware(serviceName), gin.Recovery())
	registerRoutes(router, s.store)
	s.httpServer = &http.Server{Handler: router, ReadHeaderTimeout: 5 * time.Second}

	httpListener := s.mux.Match(cmux.HTTP1Fast())
	grpcListener := s.mux.Match(cmux.HTTP2(), cmux.HTTP2HeaderField("content-type", "application/grpc"), cmux.Any())

	go func() {
		if err := s.grpcServer.Serve(grpcListener); err != nil && !isClosing(err) {
			log.Error().Err(err).Msg("fake model server: gRPC serve failed")
		}
	}()
	go func() {
		if err := s.httpServer.Serve(httpListener); err != nil && !isClosing(err) {
			log.Error().Err(err).Msg("fake model server: HTTP serve failed")
		}
	}()
	go func() {
		if err := s.mux.Serve(); err != nil && !isClosing(err) {
			log.Error().Err(err).Msg("fake model server: mux serve failed")
		}
	}()
	return s, nil
}

func isClosing(err error) bool {
	return errors.Is(err, net.ErrClosed) || errors.Is(err, http.ErrServerClosed) ||
		errors.Is(err, grpc.ErrServerStopped) || errors.Is(err, cmux.ErrListenerClosed) ||
		errors.Is(err, cmux.ErrServerClosed)
}

// Addr returns host:port.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

func (s *Server) Host() string {
	host, _, _ := net.SplitHostPort(s.Addr())
	return host
}

func (s *Server) Port() int {
	_, port, _ := net.SplitHostPort(s.Addr())
	p, _ := strconv.Atoi(port)
	return p
}

// SetLatency delays every call by d.
func (s *Server) SetLatency(d time.Duration) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.latency = d
}

// SetRawOutput makes Predict return raw as its output, verbatim.
func (s *Server) SetRawOutput(raw string) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.rawOutput = &raw
}

// FailWith makes every call fail with err. A nil err clears it.
func (s *Server) FailWith(err *api.Error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.failure = err
}

// Reset drops all models and clears every override.
func (s *Server) Reset() {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.models = make(map[string]model)
	s.store.latency = 0
	s.store.rawOutput = nil
	s.store.failure = nil
	s.store.callerID = ""
	s.store.calls = 0
}

// ModelNames returns the loaded model names, sorted.
func (s *Server) ModelNames() []string {
	models := s.store.list()
	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.name)
	}
	return names
}

// LastCallerID is the caller id header of the latest call.
func (s *Server) LastCallerID() string {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.callerID
}

// Calls is the number of calls served since Start or Reset.
func (s *Server) Calls() int {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.calls
}

func (s *Server) Close() {
	s.closeOnce.Do(func() {
		s.grpcServer.Stop()
		_ = s.httpServer.Close()
		s.mux.Close()
		_ = s.listener.Close()
	})
}
