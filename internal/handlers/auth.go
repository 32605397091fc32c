package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gatherly/backend/pkg/jsonapi"
	"github.com/gatherly/backend/pkg/utils"
)

// AuthHandler mints bearer tokens for the authentication stub. There are no
// user records to authenticate against; a token simply names the owner id
// subsequent requests act as. Omitting user_id mints one for the default
// owner.
type AuthHandler struct {
	DefaultUserID uuid.UUID
}

func NewAuthHandler(defaultUserID uuid.UUID) *AuthHandler {
	return &AuthHandler{DefaultUserID: defaultUserID}
}

type tokenRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	userID := h.DefaultUserID

	if len(c.Body()) > 0 {
		var req tokenRequest
		if err := c.BodyParser(&req); err != nil {
			return jsonapi.Error(c, fiber.StatusBadRequest, "invalid request body")
		}
		if req.UserID != nil {
			userID = *req.UserID
		}
	}

	token, err := utils.GenerateToken(userID)
	if err != nil {
		return jsonapi.Error(c, fiber.StatusInternalServerError, "internal server error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token":   token,
		"user_id": userID,
	})
}
