package handler

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"doccatalog/internal/model"
	"doccatalog/internal/repository"
	"doccatalog/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// gatherer may be nil, in which case /metrics is not served.
func RegisterRoutes(app *fiber.App, svc service.CatalogService, gatherer prometheus.Gatherer) {
	app.Get("/health", HealthCheck(svc))
	app.Get("/healthz", LivenessProbe())

	if gatherer != nil {
		metrics := otelhttp.NewHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}), "metrics")
		app.Get("/metrics", adaptor.HTTPHandler(metrics))
	}

	app.Get("/documents", ListDocuments(svc))
	app.Post("/documents", AddDocument(svc))
	app.Get("/documents/:number", GetDocument(svc))

	// Swagger UI; docs.SwaggerInfo is set before the app starts serving
	app.Get("/swagger/*", swagger.HandlerDefault)
}

// HealthCheck reports readiness and the current catalog size.
//
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func HealthCheck(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "catalog unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy", "documents": res.Total})
	}
}

// LivenessProbe always answers 200 while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListDocuments returns every document in insertion order.
//
// @Summary List documents
// @Tags documents
// @Produce json
// @Success 200 {object} service.CatalogListResult
// @Router /documents [get]
func ListDocuments(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetDocument returns one document by its 1-based number.
//
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param number path int true "1-based document number"
// @Success 200 {object} model.Entry
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{number} [get]
func GetDocument(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := strconv.Atoi(c.Params("number"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_NUMBER", "document number must be an integer")
		}
		entry, err := svc.Get(c.UserContext(), number)
		if err != nil {
			if errors.Is(err, repository.ErrOutOfRange) {
				return writeError(c, fiber.StatusNotFound, "OUT_OF_RANGE", "no document with this number")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(entry)
	}
}

// AddDocument appends a document described by a JSON model.Spec.
//
// @Summary Add a document
// @Tags documents
// @Accept json
// @Produce json
// @Param document body model.Spec true "Document"
// @Success 201 {object} model.Entry
// @Failure 400 {object} errorPayload
// @Router /documents [post]
func AddDocument(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var spec model.Spec
		if err := json.Unmarshal(c.Body(), &spec); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON document")
		}
		doc, err := spec.Build()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_KIND", "kind must be one of word, pdf, excel, txt, html")
		}
		entry, err := svc.Add(c.UserContext(), doc)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	}
}
