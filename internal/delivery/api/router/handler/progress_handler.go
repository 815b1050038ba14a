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

// ProgressHandlerParams holds dependencies for ProgressHandler, injected by Fx.
type ProgressHandlerParams struct {
	fx.In

	ProgressUC usecase.ProgressUsecase
	Logger     *slog.Logger
}

// ProgressHandler serves completed lessons, the chat transcript and the progress metric.
// Every route acts on the session identity.
type ProgressHandler struct {
	progressUC usecase.ProgressUsecase
	logger     *slog.Logger
}

// NewProgressHandler is the constructor for ProgressHandler
func NewProgressHandler(params ProgressHandlerParams) *ProgressHandler {
	return &ProgressHandler{
		progressUC: params.ProgressUC,
		logger:     params.Logger,
	}
}

// IdentityQuery is the optional ?id= accepted by the read endpoints.
type IdentityQuery struct {
	ID string `query:"id"`
}

// ChatMessageRequest is one transcript entry. Role is constants.ChatRoleUser or constants.ChatRoleAssistant.
type ChatMessageRequest struct {
	Role string `json:"role" validate:"required,oneof=user assistant"`
	Text string `json:"text"`
}

// ReplaceChatHistoryRequest is the body of POST /api/users/chat-history.
type ReplaceChatHistoryRequest struct {
	ID          string               `json:"id"`
	ChatHistory []ChatMessageRequest `json:"chatHistory" validate:"required,max=1000,dive"`
}

// MarkCompletedRequest is the body of POST /api/users/completed-lessons.
type MarkCompletedRequest struct {
	ID       string `json:"id"`
	LessonID *int   `json:"lessonId" validate:"required"`
}

// ChatHistoryResponse wraps the stored transcript.
type ChatHistoryResponse struct {
	ChatHistory []entity.ChatMessage `json:"chatHistory"`
}

// CompletedLessonsResponse lists completed lesson ids in completion order.
type CompletedLessonsResponse struct {
	CompletedLessons []int `json:"completedLessons"`
}

// ProgressResponse reports completion as a percentage of the catalog.
type ProgressResponse struct {
	CompletionPercentage float64 `json:"completionPercentage"`
	Completed            int     `json:"completed"`
	Total                int     `json:"total"`
}

// ReplaceChatHistory overwrites the stored transcript.
func (h *ProgressHandler) ReplaceChatHistory(c echo.Context) error {
	var req ReplaceChatHistoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid chat history")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	identityID, err := sessionIdentity(c, req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	history := make([]entity.ChatMessage, 0, len(req.ChatHistory))
	for _, msg := range req.ChatHistory {
		history = append(history, entity.ChatMessage{Role: msg.Role, Text: msg.Text})
	}

	if err := h.progressUC.ReplaceChatHistory(c.Request().Context(), identityID, history); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Chat history updated successfully.")
}

// ChatHistory returns the stored transcript.
func (h *ProgressHandler) ChatHistory(c echo.Context) error {
	var query IdentityQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid query")
	}

	identityID, err := sessionIdentity(c, query.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	history, err := h.progressUC.ChatHistory(c.Request().Context(), identityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ChatHistoryResponse{ChatHistory: history})
}

// MarkCompleted records a completed lesson. Repeats succeed without changing anything.
func (h *ProgressHandler) MarkCompleted(c echo.Context) error {
	var req MarkCompletedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid completion request")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	identityID, err := sessionIdentity(c, req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.progressUC.MarkCompleted(c.Request().Context(), identityID, *req.LessonID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Completed successfully")
}

// CompletedLessons lists the completed lesson ids.
func (h *ProgressHandler) CompletedLessons(c echo.Context) error {
	var query IdentityQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid query")
	}

	identityID, err := sessionIdentity(c, query.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	lessons, err := h.progressUC.CompletedLessons(c.Request().Context(), identityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CompletedLessonsResponse{CompletedLessons: lessons})
}

// Progress reports the completion percentage.
func (h *ProgressHandler) Progress(c echo.Context) error {
	var query IdentityQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid query")
	}

	identityID, err := sessionIdentity(c, query.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.progressUC.Progress(c.Request().Context(), identityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProgressResponse{
		CompletionPercentage: out.Percentage,
		Completed:            out.Completed,
		Total:                out.Total,
	})
}
