package sale

import "time"

// Sale - revenue booked against a client, optionally tied to a site.
// Amount is integer yen.
type Sale struct {
	ID        string
	ClientID  string
	SiteID    *string
	Amount    int64
	SaleDate  time.Time
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	ClientName *string
	SiteName   *string
}
