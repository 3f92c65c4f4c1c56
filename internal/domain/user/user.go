package user

import "errors"

type Role string

const (
	RoleTutor   Role = "TUTOR"
	RoleStudent Role = "STUDENT"
)

// check to see if the role is a known constant

func (r Role) IsValid() bool {
	switch r {
	case RoleTutor, RoleStudent:
		return true
	default:
		return false
	}
}

type Year string

const (
	Year1   Year = "1st Year"
	Year2   Year = "2nd Year"
	Year3   Year = "3rd Year"
	Year4   Year = "4th Year"
	YearAll Year = "All Years"
)

func (y Year) IsValid() bool {
	switch y {
	case Year1, Year2, Year3, Year4, YearAll:
		return true
	default:
		return false
	}
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Year         Year   `json:"year,omitempty"` // students only
	ProfileImage string `json:"profileImage,omitempty"`
}

// IsStudentWithYear reports whether audience filtering applies to this viewer.
func (u User) IsStudentWithYear() bool {
	return u.Role == RoleStudent && u.Year != ""
}

var ErrNotFound = errors.New("user not found")

type SignUpRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=120"`
	Email string `json:"email" binding:"required,email"`
	// accepted but never verified
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role" binding:"required,oneof=TUTOR STUDENT"`
	Year     Year   `json:"year" binding:"omitempty,oneof='1st Year' '2nd Year' '3rd Year' '4th Year' 'All Years'"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type QuickLoginRequest struct {
	Role Role `json:"role" binding:"required,oneof=TUTOR STUDENT"`
}
