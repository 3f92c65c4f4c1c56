package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/geocoder89/infohub/internal/domain/post"
	"github.com/geocoder89/infohub/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

type PostsStore interface {
	List(ctx context.Context) ([]post.Post, error)
	Add(ctx context.Context, p post.Post) error
	Replace(ctx context.Context, p post.Post) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (post.Post, error)
}

type PostsHandler struct {
	repo PostsStore
}

func NewPostsHandler(repo PostsStore) *PostsHandler {
	return &PostsHandler{repo: repo}
}

func (h *PostsHandler) ListPosts(ctx *gin.Context) {
	posts, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items": posts,
		"count": len(posts),
	})
}

func (h *PostsHandler) CreatePost(ctx *gin.Context) {
	viewer, ok := middlewares.UserFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Please log in first")
		return
	}

	var req post.CreatePostRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if req.Attachment != nil {
		if err := req.Attachment.Validate(); err != nil {
			RespondBadRequest(ctx, err.Error(), nil)
			return
		}
	}

	p := post.NewFromCreateRequest(req, viewer)

	err := h.repo.Add(ctx.Request.Context(), p)

	if err != nil {
		RespondStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// UpdatePost replaces the record wholesale, keeping id and ownership.
// Only the tutor who created a post may edit it.
func (h *PostsHandler) UpdatePost(ctx *gin.Context) {
	viewer, ok := middlewares.UserFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Please log in first")
		return
	}

	id := ctx.Param("id")

	var req post.UpdatePostRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if req.Attachment != nil {
		if err := req.Attachment.Validate(); err != nil {
			RespondBadRequest(ctx, err.Error(), nil)
			return
		}
	}

	cctx := ctx.Request.Context()

	existing, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			RespondNotFound(ctx, "Announcement not found")
			return
		}

		RespondStorageError(ctx, err)
		return
	}

	if existing.TutorID != viewer.ID {
		RespondForbidden(ctx, "Only the author can edit this announcement")
		return
	}

	updated := post.ApplyUpdate(existing, req)

	err = h.repo.Replace(cctx, updated)

	if err != nil {
		RespondStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeletePost removes by id. A missing id is already the end state, so it
// answers 204 either way.
func (h *PostsHandler) DeletePost(ctx *gin.Context) {
	viewer, ok := middlewares.UserFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Please log in first")
		return
	}

	id := ctx.Param("id")

	cctx := ctx.Request.Context()

	existing, err := h.repo.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			ctx.Status(http.StatusNoContent)
			return
		}

		RespondStorageError(ctx, err)
		return
	}

	if existing.TutorID != viewer.ID {
		RespondForbidden(ctx, "Only the author can delete this announcement")
		return
	}

	err = h.repo.Delete(cctx, id)

	if err != nil {
		RespondStorageError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
