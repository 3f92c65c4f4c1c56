package handlers

import (
	"context"
	"net/http"

	"github.com/geocoder89/infohub/internal/assistant"
	"github.com/gin-gonic/gin"
)

type TextAssistant interface {
	Refine(ctx context.Context, title, raw string) assistant.Result
	Summarize(ctx context.Context, text string) assistant.Result
}

type AssistHandler struct {
	svc TextAssistant
}

func NewAssistHandler(svc TextAssistant) *AssistHandler {
	return &AssistHandler{svc: svc}
}

type RefineRequest struct {
	Title string `json:"title" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

type SummarizeRequest struct {
	Text string `json:"text" binding:"required"`
}

// Refine rewrites announcement prose. Best effort: an unavailable
// provider answers 200 with the original text, never an error.
func (h *AssistHandler) Refine(ctx *gin.Context) {
	var req RefineRequest

	if !BindJSON(ctx, &req) {
		return
	}

	res := h.svc.Refine(ctx.Request.Context(), req.Title, req.Text)

	ctx.JSON(http.StatusOK, res)
}

func (h *AssistHandler) Summarize(ctx *gin.Context) {
	var req SummarizeRequest

	if !BindJSON(ctx, &req) {
		return
	}

	res := h.svc.Summarize(ctx.Request.Context(), req.Text)

	ctx.JSON(http.StatusOK, res)
}
