package user

import "github.com/google/uuid"

func NewFromSignUpRequest(req SignUpRequest) User {
	u := User{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}

	// year only makes sense for students
	if req.Role == RoleStudent {
		u.Year = req.Year
	}

	return u
}

// NewDemoUser synthesizes the fixed quick-login identity for a role. The
// caller is responsible for reusing an already persisted demo user instead
// of minting a second one.
func NewDemoUser(role Role) User {
	if role == RoleTutor {
		return User{
			ID:    "demo-tutor",
			Name:  "Prof. Demo Tutor",
			Email: "tutor@demo.com",
			Role:  RoleTutor,
		}
	}

	return User{
		ID:    "demo-student",
		Name:  "Alex Demo Student",
		Email: "student@demo.com",
		Role:  RoleStudent,
		Year:  Year2,
	}
}
