package handlers

import (
	"context"
	"net/http"

	"github.com/geocoder89/infohub/internal/domain/post"
	"github.com/geocoder89/infohub/internal/feed"
	"github.com/geocoder89/infohub/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

type PostsLister interface {
	List(ctx context.Context) ([]post.Post, error)
}

type FeedHandler struct {
	repo PostsLister
}

func NewFeedHandler(repo PostsLister) *FeedHandler {
	return &FeedHandler{repo: repo}
}

// Feed returns the posts visible to the signed-in viewer under the
// selected category tab and search query.
func (h *FeedHandler) Feed(ctx *gin.Context) {
	viewer, ok := middlewares.UserFromContext(ctx)

	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Please log in first")
		return
	}

	tab := feed.TabAll

	if c := ctx.Query("category"); c != "" {
		tab = feed.Tab(c)

		if !tab.IsValid() {
			RespondBadRequest(ctx, "Unknown category", gin.H{"category": c})
			return
		}
	}

	query := ctx.Query("q")

	posts, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondStorageError(ctx, err)
		return
	}

	visible := feed.Visible(posts, viewer, tab, query)

	ctx.JSON(http.StatusOK, gin.H{
		"items": visible,
		"count": len(visible),
	})
}
