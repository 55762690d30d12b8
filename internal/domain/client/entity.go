package client

import "time"

type Client struct {
	ID          string
	Name        string
	ContactName *string
	Email       *string
	Phone       *string
	Address     *string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
