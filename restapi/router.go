// Package restapi provides the Fiber application and handlers for the
// fixed-versions API.
package restapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hadeel-ghalieah/vulnerabilities/config"
	gqlschema "github.com/hadeel-ghalieah/vulnerabilities/graphql"
	"github.com/hadeel-ghalieah/vulnerabilities/osv"
)

// NewFiberApp builds the Fiber application with all routes registered
func NewFiberApp(cfg *config.Config, client *osv.Client) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:     "vulnerabilities API v1.0",
		ReadTimeout: 60 * time.Second,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
		})
	})

	app.Get("/fixed-versions", GetFixedVersions(cfg, client))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// GraphQL read surface over the same aggregator
	gqlschema.Init(client, cfg.DefaultEcosystems)
	schema, err := gqlschema.CreateSchema()
	if err != nil {
		return nil, err
	}
	app.Post("/graphql", GraphQLHandler(schema))

	return app, nil
}
