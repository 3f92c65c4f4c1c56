package kv

import (
	"context"

	"github.com/geocoder89/infohub/internal/domain/post"
	"github.com/geocoder89/infohub/internal/store"
)

type PostsRepo struct {
	kv store.KV
}

func NewPostsRepo(kv store.KV) *PostsRepo {
	return &PostsRepo{kv: kv}
}

// List returns the persisted posts newest first, or the fixed seed set
// while nothing has ever been written. Reads never persist the seeds; the
// first write materializes whatever the reader saw.
func (r *PostsRepo) List(ctx context.Context) ([]post.Post, error) {
	var posts []post.Post

	ok, err := load(ctx, r.kv, postsKey, &posts)

	if err != nil {
		return nil, err
	}

	if !ok {
		return post.Seed(), nil
	}

	return posts, nil
}

// Add prepends so the newest post is always first.
func (r *PostsRepo) Add(ctx context.Context, p post.Post) error {
	posts, err := r.List(ctx)

	if err != nil {
		return err
	}

	return save(ctx, r.kv, postsKey, append([]post.Post{p}, posts...))
}

// Replace swaps the post with a matching id wholesale, keeping its
// position. A missing id leaves the collection unchanged; the board treats
// that as a no-op rather than an error.
func (r *PostsRepo) Replace(ctx context.Context, p post.Post) error {
	posts, err := r.List(ctx)

	if err != nil {
		return err
	}

	for i := range posts {
		if posts[i].ID == p.ID {
			posts[i] = p
			break
		}
	}

	return save(ctx, r.kv, postsKey, posts)
}

// Delete removes the post with a matching id; no-op if absent.
func (r *PostsRepo) Delete(ctx context.Context, id string) error {
	posts, err := r.List(ctx)

	if err != nil {
		return err
	}

	kept := make([]post.Post, 0, len(posts))

	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	return save(ctx, r.kv, postsKey, kept)
}

// GetByID is a convenience for ownership checks on mutation.
func (r *PostsRepo) GetByID(ctx context.Context, id string) (post.Post, error) {
	posts, err := r.List(ctx)

	if err != nil {
		return post.Post{}, err
	}

	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}

	return post.Post{}, post.ErrNotFound
}
