package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/swiftstream/site/api/http/presenter"
	"github.com/swiftstream/site/pkg/security/jwt"
	"github.com/swiftstream/site/pkg/tracking"
)

// ShipmentsHandler lets console operators replace or remove shipment records.
type ShipmentsHandler struct {
	uc tracking.UseCase
}

func NewShipmentsHandler(uc tracking.UseCase) *ShipmentsHandler {
	return &ShipmentsHandler{uc: uc}
}

// Put replaces a shipment record wholesale.
// @Summary     Replace a shipment record
// @Description The path id wins over any trackingId in the body.
// @Tags        console
// @Accept      json
// @Produce     json
// @Param       id    path string           true "Tracking ID"
// @Param       input body tracking.Shipment true "Shipment"
// @Security    BearerAuth
// @Success     200 {object} tracking.Shipment
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Router      /shipments/{id} [put]
func (h *ShipmentsHandler) Put(c *fiber.Ctx) error {
	var sh tracking.Shipment
	if err := c.BodyParser(&sh); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	sh.TrackingID = c.Params("id")
	saved, err := h.uc.Replace(c.UserContext(), sh)
	if err != nil {
		return h.fail(c, err)
	}
	log.Infow("shipment replaced", "trackingId", saved.TrackingID, "operator", c.Locals(jwt.LocalOperatorEmail))
	return presenter.JSON(c, http.StatusOK, saved)
}

// Delete removes a shipment record.
// @Summary  Delete a shipment record
// @Tags     console
// @Param    id path string true "Tracking ID"
// @Security BearerAuth
// @Success  204
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /shipments/{id} [delete]
func (h *ShipmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	log.Infow("shipment deleted", "trackingId", c.Params("id"), "operator", c.Locals(jwt.LocalOperatorEmail))
	return c.SendStatus(http.StatusNoContent)
}

func (h *ShipmentsHandler) fail(c *fiber.Ctx, err error) error {
	var verr tracking.ErrValidation
	switch {
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, tracking.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, MsgTrackingNotFound)
	case errors.Is(err, tracking.ErrReadOnly):
		return presenter.Error(c, http.StatusConflict, err.Error())
	default:
		log.Errorw("shipment update failed", "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to update shipment")
	}
}
