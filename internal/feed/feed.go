// Package feed computes the list of posts visible to a viewer under the
// current board filters. Pure functions; filtering only removes, it never
// reorders.
package feed

import (
	"strings"

	"github.com/geocoder89/infohub/internal/domain/post"
	"github.com/geocoder89/infohub/internal/domain/user"
)

// Tab is the selected category tab; TabAll shows every category.
type Tab string

const TabAll Tab = "ALL"

func (t Tab) IsValid() bool {
	if t == TabAll {
		return true
	}

	return post.Category(t).IsValid()
}

// Visible applies the three filter stages in order: audience, category,
// free-text search. Each stage only drops posts, so survivors keep their
// relative order. An empty result is a valid result.
func Visible(posts []post.Post, viewer user.User, tab Tab, query string) []post.Post {
	out := audienceStage(posts, viewer)
	out = categoryStage(out, tab)
	out = searchStage(out, query)

	return out
}

// Students with a declared year only see posts targeting that year or the
// whole college. Tutors see everything.
func audienceStage(posts []post.Post, viewer user.User) []post.Post {
	if !viewer.IsStudentWithYear() {
		return posts
	}

	kept := make([]post.Post, 0, len(posts))

	for _, p := range posts {
		if p.TargetYear == viewer.Year || p.TargetYear == user.YearAll {
			kept = append(kept, p)
		}
	}

	return kept
}

func categoryStage(posts []post.Post, tab Tab) []post.Post {
	if tab == TabAll {
		return posts
	}

	kept := make([]post.Post, 0, len(posts))

	for _, p := range posts {
		if p.Category == post.Category(tab) {
			kept = append(kept, p)
		}
	}

	return kept
}

// Case-insensitive substring match over title, description and tutor name.
func searchStage(posts []post.Post, query string) []post.Post {
	if query == "" {
		return posts
	}

	q := strings.ToLower(query)

	kept := make([]post.Post, 0, len(posts))

	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.TutorName), q) {
			kept = append(kept, p)
		}
	}

	return kept
}
