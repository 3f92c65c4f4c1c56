package post

import (
	"time"

	"github.com/geocoder89/infohub/internal/domain/user"
	"github.com/google/uuid"
)

// NewFromCreateRequest stamps identity, the creating tutor and the creation
// time; everything else is taken verbatim from the form input.
func NewFromCreateRequest(req CreatePostRequest, author user.User) Post {
	return Post{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetYear:  req.TargetYear,
		Date:        req.Date,
		Time:        req.Time,
		TutorID:     author.ID,
		TutorName:   author.Name,
		Attachment:  req.Attachment,
		CreatedAt:   time.Now().UTC(),
	}
}

// ApplyUpdate replaces every form field wholesale, keeping identity and
// ownership from the existing record.
func ApplyUpdate(existing Post, req UpdatePostRequest) Post {
	existing.Title = req.Title
	existing.Description = req.Description
	existing.Category = req.Category
	existing.TargetYear = req.TargetYear
	existing.Date = req.Date
	existing.Time = req.Time
	existing.Attachment = req.Attachment

	return existing
}
