package projects

import "time"

// Project is one application record in the register.
// JSON field names mirror the legacy column names, embedded spaces included;
// existing frontends depend on them exactly.
type Project struct {
	ID             int       `json:"project id"`
	Name           string    `json:"project name"`
	Status         string    `json:"status"`
	Applicant      string    `json:"applicant"`
	SubmissionDate time.Time `json:"submission date"`
	Place          string    `json:"place"`
	User           string    `json:"user"`
}

// CreateInput carries the five caller-supplied fields of a new project.
// The server assigns id and submission date on insert.
type CreateInput struct {
	Name      string `json:"name" validate:"required"`
	Status    string `json:"status" validate:"required"`
	Applicant string `json:"applicant" validate:"required"`
	Place     string `json:"place" validate:"required"`
	User      string `json:"user" validate:"required"`
}
