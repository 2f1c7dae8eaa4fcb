package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"booknotes/internal/auth"
	"booknotes/internal/errors"
	"booknotes/internal/service"
)

// NoteHandler handles note endpoints. All operations are scoped to the
// authenticated user resolved by the auth middleware.
type NoteHandler struct {
	noteService    service.NoteService
	summaryService service.SummaryService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(noteService service.NoteService, summaryService service.SummaryService) *NoteHandler {
	return &NoteHandler{
		noteService:    noteService,
		summaryService: summaryService,
	}
}

// CreateNoteRequest represents a note creation request.
type CreateNoteRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	Author string `json:"author" validate:"required,max=255"`
	Note   string `json:"note" validate:"required"`
}

// SummaryResponse represents an enhanced summary response.
type SummaryResponse struct {
	NoteID  uint   `json:"note_id"`
	Summary string `json:"summary"`
}

// Create godoc
// @Summary Create a book note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNoteRequest true "Note data"
// @Success 201 {object} model.Note
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}

	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.noteService.Create(c.Request().Context(), claims.UserID, req.Title, req.Author, req.Note)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, note)
}

// List godoc
// @Summary List the caller's notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.NoteSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}

	summaries, err := h.noteService.ListByOwner(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, summaries)
}

// Get godoc
// @Summary Get a single note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} model.Note
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}

	id, err := parseNoteID(c)
	if err != nil {
		return err
	}

	note, err := h.noteService.Get(c.Request().Context(), id, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, note)
}

// Delete godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}

	id, err := parseNoteID(c)
	if err != nil {
		return err
	}

	if err := h.noteService.Delete(c.Request().Context(), id, claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "note deleted",
	})
}

// Enhance godoc
// @Summary Rewrite a note's text into an enhanced summary
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /notes/{id}/enhance [post]
func (h *NoteHandler) Enhance(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return err
	}

	id, err := parseNoteID(c)
	if err != nil {
		return err
	}

	// Ownership check first: non-owners must see the same 404 as for a
	// nonexistent note, never a summary failure.
	note, err := h.noteService.Get(c.Request().Context(), id, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	summary, err := h.summaryService.Enhance(c.Request().Context(), note.Content)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, SummaryResponse{
		NoteID:  note.ID,
		Summary: summary,
	})
}

func parseNoteID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid note ID",
			Code:  "INVALID_NOTE_ID",
		})
	}
	return uint(id), nil
}
