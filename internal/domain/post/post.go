package post

import (
	"errors"
	"time"

	"github.com/geocoder89/infohub/internal/domain/user"
)

type Category string

const (
	CategoryRegistrations Category = "Registrations"
	CategoryBusTimings    Category = "Bus Timings"
	CategoryEvents        Category = "Events"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryRegistrations, CategoryBusTimings, CategoryEvents:
		return true
	default:
		return false
	}
}

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{CategoryRegistrations, CategoryBusTimings, CategoryEvents}
}

// Attachment is an opaque base64 blob; the server never decodes it.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

var ErrInvalidAttachment = errors.New("attachment must have a name and data")

func (a Attachment) Validate() error {
	if a.Name == "" || a.Data == "" {
		return ErrInvalidAttachment
	}

	return nil
}

type Post struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	TargetYear  user.Year   `json:"targetYear"`
	Date        string      `json:"date"` // display strings, never parsed
	Time        string      `json:"time"`
	TutorID     string      `json:"tutorId"`
	TutorName   string      `json:"tutorName"`
	Attachment  *Attachment `json:"attachment,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

var ErrNotFound = errors.New("post not found")

type CreatePostRequest struct {
	Title       string      `json:"title" binding:"required,min=3,max=120"`
	Description string      `json:"description" binding:"required,max=2000"`
	Category    Category    `json:"category" binding:"required,oneof=Registrations 'Bus Timings' Events"`
	TargetYear  user.Year   `json:"targetYear" binding:"required,oneof='1st Year' '2nd Year' '3rd Year' '4th Year' 'All Years'"`
	Date        string      `json:"date" binding:"omitempty,max=40"`
	Time        string      `json:"time" binding:"omitempty,max=40"`
	Attachment  *Attachment `json:"attachment" binding:"omitempty"`
}

// a full replacement payload, same shape as create
type UpdatePostRequest struct {
	Title       string      `json:"title" binding:"required,min=3,max=120"`
	Description string      `json:"description" binding:"required,max=2000"`
	Category    Category    `json:"category" binding:"required,oneof=Registrations 'Bus Timings' Events"`
	TargetYear  user.Year   `json:"targetYear" binding:"required,oneof='1st Year' '2nd Year' '3rd Year' '4th Year' 'All Years'"`
	Date        string      `json:"date" binding:"omitempty,max=40"`
	Time        string      `json:"time" binding:"omitempty,max=40"`
	Attachment  *Attachment `json:"attachment" binding:"omitempty"`
}
