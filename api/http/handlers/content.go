package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftstream/site/api/http/presenter"
	"github.com/swiftstream/site/pkg/catalog"
)

// ContentHandler serves the marketing pages' data.
type ContentHandler struct{ cat catalog.Catalog }

func NewContentHandler(cat catalog.Catalog) *ContentHandler { return &ContentHandler{cat: cat} }

// Home
// @Summary Home page content
// @Tags    content
// @Produce json
// @Success 200 {object} catalog.Home
// @Router  /content/home [get]
func (h *ContentHandler) Home(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.cat.Home)
}

// Services
// @Summary Service lines
// @Tags    content
// @Produce json
// @Success 200 {array} catalog.Service
// @Router  /content/services [get]
func (h *ContentHandler) Services(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.cat.Services)
}

// Service
// @Summary One service line
// @Tags    content
// @Produce json
// @Param   slug path string true "Service slug"
// @Success 200 {object} catalog.Service
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /content/services/{slug} [get]
func (h *ContentHandler) Service(c *fiber.Ctx) error {
	s, ok := h.cat.ServiceBySlug(c.Params("slug"))
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "service not found")
	}
	return presenter.JSON(c, http.StatusOK, s)
}
