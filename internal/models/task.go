package models

import (
	"time"
)

// Task represents a single tracked unit of work
type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title            string     `gorm:"not null" json:"title"`
	Description      string     `json:"description"`
	Priority         int        `gorm:"default:3" json:"priority"` // 1=highest, 5=lowest
	EstimatedMinutes int        `gorm:"default:30" json:"estimatedMinutes"`
	Completed        bool       `gorm:"default:false" json:"completed"`
	DueDate          *time.Time `json:"dueDate"`
}

// Draft is the caller-supplied, not-yet-validated field set for create/update.
// Zero Priority or EstimatedMinutes means "not set" and takes the default.
type Draft struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Priority         int        `json:"priority"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	Completed        bool       `json:"completed"`
	DueDate          *time.Time `json:"dueDate"`
}

// DefaultPriority is used when a draft leaves priority unset.
const DefaultPriority = 3

// DefaultEstimatedMinutes is used when a draft leaves the estimate unset.
const DefaultEstimatedMinutes = 30
