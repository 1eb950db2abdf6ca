package models

import "time"

// Client represents a customer of the business.
// Estimates, invoices and revenue records reference a client by ClientID.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Client information
	Name    string  `gorm:"not null" json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Company *string `json:"company"`

	// CreatedAt is assigned by the database on insert and never written back.
	CreatedAt time.Time `gorm:"->" json:"created_at"`
}

// DisplayName returns the company name when set, the client name otherwise.
func (c *Client) DisplayName() string {
	if c.Company != nil && *c.Company != "" {
		return *c.Company
	}
	return c.Name
}
