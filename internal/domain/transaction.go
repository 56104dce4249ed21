package domain

import "time"

type TransactionType string

const (
	TransactionTypeCheckout TransactionType = "checkout"
	// TransactionTypeCheckin exists in the schema but is never written:
	// a checkin is recorded by stamping ActualReturnDate on the checkout row.
	TransactionTypeCheckin TransactionType = "checkin"
)

// Transaction records one checkout event. ActualReturnDate == nil means the
// tool is still out (an "open" transaction). Rows are mutated once on checkin
// and never deleted.
type Transaction struct {
	ID                 int64           `json:"id"`
	ToolID             int64           `json:"tool_id"`
	UserID             int64           `json:"user_id"`
	Type               TransactionType `json:"type"`
	CheckoutDate       time.Time       `json:"checkout_date"`
	ExpectedReturnDate *time.Time      `json:"expected_return_date,omitempty"`
	ActualReturnDate   *time.Time      `json:"actual_return_date,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	CreatedOn          time.Time       `json:"created_on"`
}

// Open reports whether the tool has not been returned yet.
func (t *Transaction) Open() bool {
	return t.ActualReturnDate == nil
}

// TransactionView is the flattened shape served to clients: referenced tool
// and user fields inlined, action label derived, and status freshly resolved
// rather than read from the cached Tool.Status field.
type TransactionView struct {
	ID             int64          `json:"id"`
	ToolName       string         `json:"tool_name"`
	AssetTag       string         `json:"asset_tag"`
	UserName       string         `json:"user_name"`
	UserEmail      string         `json:"user_email"`
	Action         string         `json:"action"` // "Checked Out" or "Checked In"
	CheckoutDate   time.Time      `json:"checkout_date"`
	CheckinDate    *time.Time     `json:"checkin_date,omitempty"`
	DueDate        *time.Time     `json:"due_date,omitempty"`
	EventTimestamp time.Time      `json:"event_timestamp"`
	Status         ResolvedStatus `json:"status"`
	Notes          string         `json:"notes,omitempty"`
}

// TransactionRecord is a Transaction joined with the display fields of its
// tool and user, as returned by list queries. Tool or user deletion leaves
// the labels empty; view shaping substitutes "Unknown" placeholders.
type TransactionRecord struct {
	Transaction
	ToolName  string
	AssetTag  string
	UserName  string
	UserEmail string
}
