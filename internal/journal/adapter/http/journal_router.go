package http

import (
	"errors"
	"mime/multipart"

	"travel-journal/internal/journal/usecase"
	apperrors "travel-journal/internal/shared/errors"
	"travel-journal/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// JournalHTTPHandler handles HTTP requests for trips and entries. Every
// handler reads the owner's ID from the request context established by the
// auth middleware, never from the payload.
type JournalHTTPHandler struct {
	trips   usecase.TripUsecaseInterface
	entries usecase.EntryUsecaseInterface
}

// NewJournalHTTPHandler creates a new journal HTTP handler.
func NewJournalHTTPHandler(trips usecase.TripUsecaseInterface, entries usecase.EntryUsecaseInterface) *JournalHTTPHandler {
	return &JournalHTTPHandler{trips: trips, entries: entries}
}

// SetupJournalRoutes sets up the protected trip and entry routes.
func (h *JournalHTTPHandler) SetupJournalRoutes(router fiber.Router, protect fiber.Handler) {
	trips := router.Group("/trips", protect)
	trips.Get("/", h.ListTrips)
	trips.Post("/", h.CreateTrip)
	trips.Put("/:id", h.UpdateTrip)
	trips.Delete("/:id", h.DeleteTrip)

	entries := router.Group("/entries", protect)
	entries.Get("/", h.ListEntries)
	entries.Post("/", h.CreateEntry)
	entries.Put("/:id", h.UpdateEntry)
	entries.Delete("/:id", h.DeleteEntry)
}

// ListTrips returns the caller's trips, newest first.
func (h *JournalHTTPHandler) ListTrips(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return respondUnauthenticated(c)
	}

	trips, err := h.trips.List(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(trips)
}

// CreateTrip creates a trip owned by the caller.
func (h *JournalHTTPHandler) CreateTrip(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return respondUnauthenticated(c)
	}

	var req usecase.CreateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	trip, err := h.trips.Create(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(trip)
}

// UpdateTrip applies a partial update to the caller's trip.
func (h *JournalHTTPHandler) UpdateTrip(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return respondUnauthenticated(c)
	}

	var req usecase.UpdateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	trip, err := h.trips.Update(c.UserContext(), userID, c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(trip)
}

// DeleteTrip deletes the caller's trip; missing and foreign IDs are a no-op.
func (h *JournalHTTPHandler) DeleteTrip(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return respondUnauthenticated(c)
	}

	if err := h.trips.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEntries returns the caller's entries, optionally filtered by tripId.
func (h *JournalHTTPHandler) ListEntries(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return respondUnauthenticated(c)
	}

	entries, err := h.entries.List(c.UserContext(), userID, c.Query("tripId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// CreateEntry creates an entry owned by the caller. Accepts JSON or a
// multipart form carrying an optional "image" file.
func (h *JournalHTTPHandler) CreateEntry(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return respondUnauthenticated(c)
	}

	var req usecase.CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	entry, err := h.entries.Create(c.UserContext(), userID, req, imageFile(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateEntry applies a partial update to the caller's entry.
func (h *JournalHTTPHandler) UpdateEntry(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return respondUnauthenticated(c)
	}

	var req usecase.UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	entry, err := h.entries.Update(c.UserContext(), userID, c.Params("id"), req, imageFile(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// DeleteEntry deletes the caller's entry; missing and foreign IDs are a no-op.
func (h *JournalHTTPHandler) DeleteEntry(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return respondUnauthenticated(c)
	}

	if err := h.entries.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// imageFile extracts the uploaded image from a multipart request; JSON
// requests simply have none.
func imageFile(c *fiber.Ctx) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

// respondError translates an application error into the JSON error contract
// {error, code} with the matching status code.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
		"code":  "internal_error",
	})
}

func respondUnauthenticated(c *fiber.Ctx) error {
	return respondError(c, apperrors.NewAuthenticationError("Authentication required"))
}

func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
		"code":  "invalid_body",
	})
}
