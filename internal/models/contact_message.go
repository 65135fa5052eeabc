package models

import "time"

type ContactMessage struct {
	ID        int64     `json:"id"`
	TicketID  string    `json:"ticketId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Company   string    `json:"company,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
