package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gatherly/backend/internal/middleware"
	"github.com/gatherly/backend/internal/models"
	"github.com/gatherly/backend/internal/services"
	"github.com/gatherly/backend/pkg/jsonapi"
	"github.com/gatherly/backend/pkg/logger"
)

const groupEventType = "group-events"

type GroupEventsHandler struct {
	Service *services.GroupEventService
}

func NewGroupEventsHandler(service *services.GroupEventService) *GroupEventsHandler {
	return &GroupEventsHandler{Service: service}
}

// groupEventAttributes is the exact set of client-writable fields. Anything
// else a client sends (id, user_id, timestamps, deleted_at) has no slot here
// and is silently ignored.
type groupEventAttributes struct {
	Name         *string      `json:"name"`
	Description  *string      `json:"description"`
	StartDate    *models.Date `json:"start_date"`
	EndDate      *models.Date `json:"end_date"`
	Duration     *int         `json:"duration"`
	LocationName *string      `json:"location_name"`
	IsPublished  *bool        `json:"is_published"`
}

type groupEventRequest struct {
	Data struct {
		Type       string               `json:"type"`
		Attributes groupEventAttributes `json:"attributes"`
	} `json:"data"`
}

func (attrs groupEventAttributes) patch() services.GroupEventPatch {
	return services.GroupEventPatch{
		Name:         attrs.Name,
		Description:  attrs.Description,
		StartDate:    attrs.StartDate,
		EndDate:      attrs.EndDate,
		Duration:     attrs.Duration,
		LocationName: attrs.LocationName,
		IsPublished:  attrs.IsPublished,
	}
}

type groupEventResourceAttributes struct {
	UserID       uuid.UUID    `json:"user_id"`
	Name         *string      `json:"name"`
	Description  *string      `json:"description"`
	StartDate    *models.Date `json:"start_date"`
	EndDate      *models.Date `json:"end_date"`
	Duration     *int         `json:"duration"`
	LocationName *string      `json:"location_name"`
	IsPublished  bool         `json:"is_published"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func groupEventResource(event *models.GroupEvent) jsonapi.Resource {
	return jsonapi.Resource{
		ID:   event.ID.String(),
		Type: groupEventType,
		Attributes: groupEventResourceAttributes{
			UserID:       event.UserID,
			Name:         event.Name,
			Description:  event.Description,
			StartDate:    event.StartDate,
			EndDate:      event.EndDate,
			Duration:     event.Duration,
			LocationName: event.LocationName,
			IsPublished:  event.IsPublished,
			CreatedAt:    event.CreatedAt,
			UpdatedAt:    event.UpdatedAt,
		},
	}
}

func (h *GroupEventsHandler) Create(c *fiber.Ctx) error {
	ownerID := middleware.CurrentUserID(c)

	var req groupEventRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonapi.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	event, err := h.Service.Create(ownerID, req.Data.Attributes.patch())
	if err != nil {
		return h.renderError(c, err)
	}

	logger.InfoWithUser(ownerID.String(), "group_event_created", map[string]interface{}{
		"group_event_id": event.ID.String(),
	})

	return jsonapi.Data(c, fiber.StatusCreated, groupEventResource(event))
}

func (h *GroupEventsHandler) List(c *fiber.Ctx) error {
	ownerID := middleware.CurrentUserID(c)
	page, limit := parsePagination(c)

	events, total, err := h.Service.List(ownerID, page, limit)
	if err != nil {
		return h.renderError(c, err)
	}

	resources := make([]jsonapi.Resource, len(events))
	for i := range events {
		resources[i] = groupEventResource(&events[i])
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return jsonapi.DataWithMeta(c, fiber.StatusOK, resources, jsonapi.Meta{
		"page":        page,
		"limit":       limit,
		"total":       total,
		"total_pages": totalPages,
	})
}

func (h *GroupEventsHandler) Get(c *fiber.Ctx) error {
	ownerID := middleware.CurrentUserID(c)

	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return jsonapi.Error(c, fiber.StatusNotFound, "group event not found")
	}

	event, err := h.Service.Get(ownerID, id)
	if err != nil {
		return h.renderError(c, err)
	}
	return jsonapi.Data(c, fiber.StatusOK, groupEventResource(event))
}

func (h *GroupEventsHandler) Update(c *fiber.Ctx) error {
	ownerID := middleware.CurrentUserID(c)

	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return jsonapi.Error(c, fiber.StatusNotFound, "group event not found")
	}

	var req groupEventRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonapi.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	event, err := h.Service.Update(ownerID, id, req.Data.Attributes.patch())
	if err != nil {
		return h.renderError(c, err)
	}

	logger.InfoWithUser(ownerID.String(), "group_event_updated", map[string]interface{}{
		"group_event_id": event.ID.String(),
	})

	return jsonapi.Data(c, fiber.StatusOK, groupEventResource(event))
}

func (h *GroupEventsHandler) Delete(c *fiber.Ctx) error {
	ownerID := middleware.CurrentUserID(c)

	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return jsonapi.Error(c, fiber.StatusNotFound, "group event not found")
	}

	if err := h.Service.SoftDelete(ownerID, id); err != nil {
		return h.renderError(c, err)
	}

	logger.InfoWithUser(ownerID.String(), "group_event_deleted", map[string]interface{}{
		"group_event_id": id.String(),
	})

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *GroupEventsHandler) renderError(c *fiber.Ctx, err error) error {
	var verrs services.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		objects := make([]jsonapi.ErrorObject, len(verrs))
		for i, fe := range verrs {
			objects[i] = jsonapi.AttributeError(fiber.StatusUnprocessableEntity, fe.Field, fe.Detail)
		}
		return jsonapi.Errors(c, fiber.StatusUnprocessableEntity, objects)
	case errors.Is(err, services.ErrNotFound):
		return jsonapi.Error(c, fiber.StatusNotFound, "group event not found")
	default:
		logger.Error("group_event_request_failed", map[string]interface{}{
			"path":  c.Path(),
			"error": err.Error(),
		})
		return jsonapi.Error(c, fiber.StatusInternalServerError, "internal server error")
	}
}
