package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Verification
	VerifyHandler Handler
	ChatHandler   Handler

	// Certificates
	GetCertificateHandler   Handler
	ListCertificatesHandler Handler
	GetStatisticsHandler    Handler

	// Misc
	GetVersionHandler Handler
}
