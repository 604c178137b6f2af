package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/swiftstream/site/api/http/presenter"
	"github.com/swiftstream/site/pkg/tracking"
)

const MsgTrackingNotFound = "Tracking ID not found."

type TrackingHandler struct {
	uc          tracking.UseCase
	notFoundMsg string
}

// NewTrackingHandler builds the lookup handler; hint, when set, is appended to
// the not-found message (e.g. to point at the demo id).
func NewTrackingHandler(uc tracking.UseCase, hint string) *TrackingHandler {
	msg := MsgTrackingNotFound
	if hint != "" {
		msg += " " + hint
	}
	return &TrackingHandler{uc: uc, notFoundMsg: msg}
}

// Get looks a shipment up by tracking id.
// @Summary Track a shipment
// @Tags    tracking
// @Produce json
// @Param   id path string true "Tracking ID (case-insensitive)"
// @Success 200 {object} tracking.Shipment
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tracking/{id} [get]
func (h *TrackingHandler) Get(c *fiber.Ctx) error {
	sh, err := h.uc.Lookup(c.UserContext(), c.Params("id"))
	if err != nil {
		var verr tracking.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, tracking.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, h.notFoundMsg)
		default:
			log.Errorw("tracking lookup failed", "error", err)
			return presenter.Error(c, http.StatusInternalServerError, "failed to look up shipment")
		}
	}
	return presenter.JSON(c, http.StatusOK, sh)
}
