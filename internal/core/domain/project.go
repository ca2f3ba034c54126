package domain

import (
	"errors"
	"time"
)

// ProjectStatus classifies where a posted project is in its lifecycle.
type ProjectStatus string

const (
	ProjectPending  ProjectStatus = "pending"
	ProjectAccepted ProjectStatus = "accepted"
	ProjectRejected ProjectStatus = "rejected"
	ProjectDone     ProjectStatus = "done"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrInvalidStatus = errors.New("invalid project status")

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPending, ProjectAccepted, ProjectRejected, ProjectDone:
		return true
	}
	return false
}

// Project is a client's posted engagement.
type Project struct {
	ID                int64         `json:"id"`
	UserID            int64         `json:"user_id"`
	Title             string        `json:"title"`
	Description       *string       `json:"description"`
	Budget            *float64      `json:"budget"`
	SkillRequirements []string      `json:"skill_requirements"`
	Constraints       *string       `json:"constraints"`
	Status            ProjectStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ProjectDetail joins a project with its owner's public contact fields so a
// developer can reach out about the engagement.
type ProjectDetail struct {
	Project
	OwnerEmail    string  `json:"owner_email"`
	OwnerName     *string `json:"owner_name"`
	OwnerWhatsapp *string `json:"owner_whatsapp"`
}
