package models

import "time"

type ServiceRequest struct {
	ID            int64     `json:"id"`
	RequestID     string    `json:"requestId"`
	CompanyName   string    `json:"companyName"`
	ContactPerson string    `json:"contactPerson"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceType   string    `json:"serviceType"`
	Requirements  string    `json:"requirements,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
