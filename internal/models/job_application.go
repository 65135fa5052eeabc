package models

import "time"

type JobApplication struct {
	ID             int64     `json:"id"`
	ApplicationID  string    `json:"applicationId"`
	JobID          int       `json:"jobId"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Experience     string    `json:"experience"`
	Education      string    `json:"education"`
	Skills         string    `json:"skills"`
	ResumePath     string    `json:"resumePath,omitempty"`
	CoverLetter    string    `json:"coverLetter"`
	ExpectedSalary int       `json:"expectedSalary,omitempty"`
	AvailableFrom  string    `json:"availableFrom"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}
