package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LoggingMiddleware logs one line per request
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		method := c.Method()
		path := c.Path()
		latency := time.Since(start)
		ip := c.IP()

		if err != nil {
			logger.Printf("%s %s %s %d %s error=%v", ip, method, path, status, latency, err)
		} else {
			logger.Printf("%s %s %s %d %s", ip, method, path, status, latency)
		}

		return err
	}
}
