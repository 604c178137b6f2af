package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/swiftstream/site/api/http/presenter"
	"github.com/swiftstream/site/pkg/quote"
)

// MsgQuoteFailed is the only message shown for any completion-service failure.
const MsgQuoteFailed = "Failed to generate quote. Please try again later."

type QuoteHandler struct {
	uc quote.UseCase
}

func NewQuoteHandler(uc quote.UseCase) *QuoteHandler { return &QuoteHandler{uc: uc} }

type quoteResult struct {
	Model string         `json:"model"`
	Quote quote.Response `json:"quote"`
}

// Create generates a freight quote through the language model.
// @Summary     Generate a freight quote
// @Description Validates the request, asks the model for a schema-constrained estimate and returns it unchanged.
// @Tags        quotes
// @Accept      json
// @Produce     json
// @Param       input body quote.Request true "Quote request"
// @Success     200 {object} quoteResult
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     502 {object} presenter.ErrorResponse
// @Router      /quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var req quote.Request
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	res, err := h.uc.Generate(c.UserContext(), req)
	if err != nil {
		var verr quote.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case quote.IsUpstream(err):
			log.Warnw("quote generation failed", "error", err, "origin", req.Origin, "destination", req.Destination)
			return presenter.Error(c, http.StatusBadGateway, MsgQuoteFailed)
		default:
			log.Errorw("quote generation failed", "error", err)
			return presenter.Error(c, http.StatusInternalServerError, MsgQuoteFailed)
		}
	}
	return presenter.JSON(c, http.StatusOK, quoteResult{Model: h.uc.Model(), Quote: res})
}

// Defaults returns the initial quote form values.
// @Summary Quote form defaults
// @Tags    quotes
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /quotes/defaults [get]
func (h *QuoteHandler) Defaults(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"defaults":       quote.DefaultRequest(),
		"transportTypes": quote.TransportTypes,
	})
}
