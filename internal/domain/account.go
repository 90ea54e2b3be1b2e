package domain

import "time"

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusDisabled AccountStatus = "disabled"
)

// Account is the mirrored snapshot of a Meta ad account.
// The primary key is the vendor account ID without the "act_" prefix.
type Account struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Status       AccountStatus `json:"status"`
	VendorStatus int           `json:"vendor_status"`
	Currency     string        `json:"currency"`
	Timezone     string        `json:"timezone"`
	BusinessID   string        `json:"business_id,omitempty"`
	BusinessName string        `json:"business_name,omitempty"`
	LastSyncedAt *time.Time    `json:"last_synced_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
