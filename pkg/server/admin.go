package server

import (
	"fmt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/config"
	handlers "github.com/playdeck/tabletally/pkg/handlers/http"
	wshandlers "github.com/playdeck/tabletally/pkg/handlers/websocket"
	"github.com/playdeck/tabletally/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type (
	AdminServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		WebsocketTransport  wshandlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	AdminServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
		websocketTransport  wshandlers.HandlerTransport
	}
)

func NewAdminServer(di AdminServerDI) *AdminServer {
	return &AdminServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
		websocketTransport:  di.WebsocketTransport,
	}
}

func (s *AdminServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting admin server")
	return s.Router.Listen(addr)
}

func (s *AdminServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.RecoverMiddleware.Middleware())
	s.Router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	v1 := s.Router.Group("/api/v1")
	v1.Use(s.middlewareTransport.AuthMiddleware.Middleware())
	{
		customers := v1.Group("/customers")
		{
			customers.Post("", s.handlerTransport.CreateCustomerHandler.Handle)
			customers.Get("", s.handlerTransport.ListCustomersHandler.Handle)
			customers.Get("/:customer_id", s.handlerTransport.GetCustomerHandler.Handle)
			customers.Put("/:customer_id", s.handlerTransport.UpdateCustomerHandler.Handle)
			customers.Delete("/:customer_id", s.handlerTransport.DeleteCustomerHandler.Handle)
		}

		games := v1.Group("/games")
		{
			games.Post("", s.handlerTransport.CreateGameHandler.Handle)
			games.Get("", s.handlerTransport.ListGamesHandler.Handle)
			games.Get("/:game_id", s.handlerTransport.GetGameHandler.Handle)
			games.Put("/:game_id", s.handlerTransport.UpdateGameHandler.Handle)
			games.Delete("/:game_id", s.handlerTransport.DeleteGameHandler.Handle)
		}

		tables := v1.Group("/tables")
		{
			tables.Post("", s.handlerTransport.CreateTableHandler.Handle)
			tables.Get("", s.handlerTransport.ListTablesHandler.Handle)
			tables.Get("/:table_id", s.handlerTransport.GetTableHandler.Handle)
			tables.Put("/:table_id", s.handlerTransport.UpdateTableHandler.Handle)
			tables.Delete("/:table_id", s.handlerTransport.DeleteTableHandler.Handle)
		}

		promotions := v1.Group("/promotions")
		{
			promotions.Post("", s.handlerTransport.CreatePromotionHandler.Handle)
			promotions.Get("", s.handlerTransport.ListPromotionsHandler.Handle)
			promotions.Get("/:promotion_id", s.handlerTransport.GetPromotionHandler.Handle)
			promotions.Put("/:promotion_id", s.handlerTransport.UpdatePromotionHandler.Handle)
			promotions.Delete("/:promotion_id", s.handlerTransport.DeletePromotionHandler.Handle)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.Post("", s.handlerTransport.StartSessionHandler.Handle)
			sessions.Get("", s.handlerTransport.ListSessionsHandler.Handle)
			sessions.Get("/:session_id", s.handlerTransport.GetSessionHandler.Handle)
			sessions.Get("/:session_id/quote", s.handlerTransport.SessionQuoteHandler.Handle)
			sessions.Post("/:session_id/end", s.handlerTransport.EndSessionHandler.Handle)
			sessions.Post("/:session_id/cancel", s.handlerTransport.CancelSessionHandler.Handle)
		}

		payments := v1.Group("/payments")
		{
			payments.Get("", s.handlerTransport.ListPaymentsHandler.Handle)
			payments.Get("/:payment_id", s.handlerTransport.GetPaymentHandler.Handle)
		}

		v1.Get("/activity", s.handlerTransport.ListActivityHandler.Handle)
		v1.Get("/analytics/revenue", s.handlerTransport.RevenueSummaryHandler.Handle)

		ws := v1.Group("/ws")
		{
			ws.Use(func(c *fiber.Ctx) error {
				if websocket.IsWebSocketUpgrade(c) {
					return c.Next()
				}
				return fiber.ErrUpgradeRequired
			})
			ws.Get("/sessions", websocket.New(s.websocketTransport.LiveSessionsHandler.Handle))
		}
	}
}

func (s *AdminServer) Shutdown() error {
	return s.Router.Shutdown()
}
