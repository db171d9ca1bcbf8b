package restapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/hadeel-ghalieah/vulnerabilities/config"
	"github.com/hadeel-ghalieah/vulnerabilities/metrics"
	"github.com/hadeel-ghalieah/vulnerabilities/model"
	"github.com/hadeel-ghalieah/vulnerabilities/osv"
	"github.com/hadeel-ghalieah/vulnerabilities/util"
)

var log = util.InitLogger()

// GetFixedVersions handles fixed-version lookups for a package across one
// or more OSV ecosystems. The per-ecosystem queries run concurrently; a
// single failing sub-query fails the whole request.
func GetFixedVersions(cfg *config.Config, client *osv.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")
		ecosystems := queryList(c, "ecosystems")

		// A purl is accepted as an alternative to name+ecosystems
		if purl := c.Query("purl"); purl != "" && name == "" {
			purlName, ecosystem, err := util.PackageFromPURL(purl)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
					Success: false,
					Message: "Invalid purl: " + err.Error(),
				})
			}
			name = purlName
			if len(ecosystems) == 0 {
				ecosystems = []string{ecosystem}
			}
		}

		if util.IsEmpty(name) {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: "Query parameter name is required",
			})
		}

		if len(ecosystems) == 0 {
			ecosystems = cfg.DefaultEcosystems
		}

		metrics.Get().LookupsTotal.Inc()

		versions, err := client.CollectFixedVersions(c.Context(), name, ecosystems)
		if err != nil {
			log.Sugar().Errorf("Fixed-version lookup failed for %s: %v", name, err)
			return c.Status(fiber.StatusBadGateway).JSON(model.ErrorResponse{
				Success: false,
				Message: "Vulnerability query failed: " + err.Error(),
			})
		}

		if len(versions) == 0 {
			metrics.Get().LookupsEmpty.Inc()
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
				Success: false,
				Message: fmt.Sprintf("No fixed versions found for %s", name),
			})
		}

		return c.JSON(model.NewFixedVersionsResponse(name, util.UniqueSorted(versions)))
	}
}

// queryList collects repeated and comma-separated values for a query key
func queryList(c *fiber.Ctx, key string) []string {
	var values []string
	for _, value := range c.Context().QueryArgs().PeekMulti(key) {
		values = append(values, string(value))
	}
	return util.SplitList(values)
}
