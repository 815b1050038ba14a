package handler

import (
	"log/slog"
	"net/http"

	"lingo/internal/delivery/api/response"
	"lingo/internal/domain/entity"
	"lingo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler serves the lesson dataset.
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// GetLessonRequest is the body of POST /api/content.
type GetLessonRequest struct {
	ID *int `json:"id" validate:"required"`
}

// ListLessonsRequest holds the query of GET /api/content.
type ListLessonsRequest struct {
	Offset int `query:"offset" validate:"gte=0"`
	Limit  int `query:"limit" validate:"gte=0,lte=100"`
}

// LessonPageResponse is one page of the lesson index.
type LessonPageResponse struct {
	Total  int                    `json:"total"`
	Offset int                    `json:"offset"`
	Items  []entity.LessonSummary `json:"items"`
}

// GetLesson returns the lesson with the requested dataset id.
func (h *ContentHandler) GetLesson(c echo.Context) error {
	var req GetLessonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid content request")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	lesson, err := h.contentUC.GetLesson(c.Request().Context(), *req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lesson)
}

// ListLessons returns a page of lesson summaries.
func (h *ContentHandler) ListLessons(c echo.Context) error {
	var req ListLessonsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid pagination parameters")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.contentUC.ListLessons(c.Request().Context(), req.Offset, req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LessonPageResponse{
		Total:  page.Total,
		Offset: page.Offset,
		Items:  page.Items,
	})
}
