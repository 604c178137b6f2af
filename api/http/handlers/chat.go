package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftstream/site/api/http/presenter"
	"github.com/swiftstream/site/pkg/chat"
)

type ChatHandler struct {
	assistant *chat.Assistant
}

func NewChatHandler(assistant *chat.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Send forwards a visitor message to the assistant.
// Provider failures are answered in-band with an apology, never as an HTTP error.
// @Summary Chat with SwiftBot
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body chatRequest true "Message"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /chat [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	reply, err := h.assistant.SendMessage(c.UserContext(), req.Message)
	if err != nil {
		var verr chat.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, chat.FallbackError)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"reply": reply})
}
