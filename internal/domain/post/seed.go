package post

import (
	"time"

	"github.com/geocoder89/infohub/internal/domain/user"
)

// Seed returns the first-run default content served while no posts have
// ever been persisted. Timestamps are fixed so repeated reads of an empty
// board are identical.
func Seed() []Post {
	return []Post{
		{
			ID:          "1",
			Title:       "Orientation Registration",
			Description: "Registration for the freshman orientation is now open. Please fill out the form by Friday.",
			Category:    CategoryRegistrations,
			TargetYear:  user.Year1,
			Date:        "2024-09-01",
			Time:        "10:00 AM",
			TutorID:     "tutor-1",
			TutorName:   "Dr. Sarah Smith",
			CreatedAt:   time.Date(2024, 8, 30, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Evening Bus Schedule Change",
			Description: "The 6:00 PM bus to City Center will now depart at 6:15 PM starting Monday.",
			Category:    CategoryBusTimings,
			TargetYear:  user.YearAll,
			Date:        "2024-09-05",
			Time:        "06:00 PM",
			TutorID:     "tutor-1",
			TutorName:   "Dr. Sarah Smith",
			CreatedAt:   time.Date(2024, 8, 30, 22, 0, 0, 0, time.UTC),
		},
	}
}
