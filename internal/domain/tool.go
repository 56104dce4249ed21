package domain

import "time"

type ToolStatus string

const (
	ToolStatusAvailable        ToolStatus = "Available"
	ToolStatusCheckedOut       ToolStatus = "Checked Out"
	ToolStatusUnderMaintenance ToolStatus = "Under Maintenance"
	ToolStatusRetired          ToolStatus = "Retired"
	ToolStatusOverdue          ToolStatus = "Overdue"
)

// ValidToolStatus reports whether s is one of the known tool statuses.
func ValidToolStatus(s ToolStatus) bool {
	switch s {
	case ToolStatusAvailable, ToolStatusCheckedOut, ToolStatusUnderMaintenance,
		ToolStatusRetired, ToolStatusOverdue:
		return true
	}
	return false
}

// Tool is a physical tool tracked by the inventory. Status is a cached
// field written by the transaction engine and the overdue sweep; list
// views re-derive display status from the open transaction instead of
// trusting it (see Resolve).
type Tool struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	AssetTag     string     `json:"asset_tag"` // human-assigned unique identifier
	CategoryID   int64      `json:"category_id"`
	CategoryName string     `json:"category_name,omitempty"` // populated on reads that join categories
	Status       ToolStatus `json:"status"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Location     string     `json:"location,omitempty"`
	ImagePath    string     `json:"image_path,omitempty"`
	CreatedOn    time.Time  `json:"created_on"`
	UpdatedOn    time.Time  `json:"updated_on"`
}

// CheckoutAllowed reports whether a checkout may start against the tool's
// cached status. Overdue tools stay checkout-able: an overdue tool that was
// quietly returned can be handed straight to the next user.
func (t *Tool) CheckoutAllowed() bool {
	return t.Status == ToolStatusAvailable || t.Status == ToolStatusOverdue
}
