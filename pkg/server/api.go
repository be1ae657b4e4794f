package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/VeritasAI/TrustScope/pkg/config"
	handlers "github.com/VeritasAI/TrustScope/pkg/handlers/http"
	"github.com/VeritasAI/TrustScope/pkg/middleware"
)

type (
	ApiServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	ApiServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewApiServer(di ApiServerDI) *ApiServer {
	return &ApiServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *ApiServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting api server")
	return s.Router.Listen(addr)
}

func (s *ApiServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.PanicRecoverMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	v1 := s.Router.Group("/api/v1")
	{
		v1.Post("/verifications", s.handlerTransport.VerifyHandler.Handle)
		v1.Post("/chat", s.handlerTransport.ChatHandler.Handle)

		certificates := v1.Group("/certificates")
		{
			certificates.Get("", s.handlerTransport.ListCertificatesHandler.Handle)
			certificates.Get("/:certificate_id", s.handlerTransport.GetCertificateHandler.Handle)
		}

		v1.Get("/statistics", s.handlerTransport.GetStatisticsHandler.Handle)
		v1.Get("/version", s.handlerTransport.GetVersionHandler.Handle)
	}
}

func (s *ApiServer) Shutdown() error {
	if err := s.shutdownMetrics(); err != nil {
		s.Logger.WithError(err).Error("failed to shut down metrics server")
	}
	return s.Router.Shutdown()
}
