package models

import "time"

// Quote is a priced shipping estimate. Rows are immutable once created.
type Quote struct {
	ID            int64     `json:"id"`
	QuoteID       string    `json:"quoteId"`
	Pickup        string    `json:"pickup"`
	Delivery      string    `json:"delivery"`
	Weight        int       `json:"weight"`
	Service       string    `json:"service"`
	EstimatedCost int       `json:"estimatedCost"`
	Distance      int       `json:"distance"`
	DeliveryTime  string    `json:"deliveryTime"`
	CreatedAt     time.Time `json:"createdAt"`
}
