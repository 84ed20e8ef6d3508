package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS returns the permissive cross-origin policy, applied uniformly to all
// routes: any origin, all methods, all headers, credentialed requests allowed.
//
// Credentialed CORS forbids a literal "*" origin, so origins are accepted via
// AllowOriginsFunc and echoed back on Access-Control-Allow-Origin. AllowHeaders
// is left empty so preflight responses echo the requested headers, which is
// the credentials-compatible form of "all headers".
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
	})
}
