package http

import "github.com/gofiber/fiber/v2"

const ErrInvalidJsonPayload = "invalid JSON payload"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Customer
	CreateCustomerHandler Handler
	ListCustomersHandler  Handler
	GetCustomerHandler    Handler
	UpdateCustomerHandler Handler
	DeleteCustomerHandler Handler

	// Game
	CreateGameHandler Handler
	ListGamesHandler  Handler
	GetGameHandler    Handler
	UpdateGameHandler Handler
	DeleteGameHandler Handler

	// Table
	CreateTableHandler Handler
	ListTablesHandler  Handler
	GetTableHandler    Handler
	UpdateTableHandler Handler
	DeleteTableHandler Handler

	// Promotion
	CreatePromotionHandler Handler
	ListPromotionsHandler  Handler
	GetPromotionHandler    Handler
	UpdatePromotionHandler Handler
	DeletePromotionHandler Handler

	// Session
	StartSessionHandler  Handler
	ListSessionsHandler  Handler
	GetSessionHandler    Handler
	SessionQuoteHandler  Handler
	EndSessionHandler    Handler
	CancelSessionHandler Handler

	// Payment
	ListPaymentsHandler Handler
	GetPaymentHandler   Handler

	// Activity / analytics
	ListActivityHandler   Handler
	RevenueSummaryHandler Handler
}
