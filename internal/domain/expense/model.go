package expense

import (
	"time"

	"github.com/google/uuid"
)

// Category is the fixed expense classification used by the financial rollups.
type Category string

const (
	CategoryUtilities   Category = "utilities"
	CategorySupplies    Category = "supplies"
	CategoryFood        Category = "food"
	CategoryTransport   Category = "transport"
	CategoryMaintenance Category = "maintenance"
	CategoryStaff       Category = "staff"
	CategoryOther       Category = "other"
)

var validCategories = map[Category]bool{
	CategoryUtilities:   true,
	CategorySupplies:    true,
	CategoryFood:        true,
	CategoryTransport:   true,
	CategoryMaintenance: true,
	CategoryStaff:       true,
	CategoryOther:       true,
}

// PaymentMethod records how an expense was settled.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentMobileMoney PaymentMethod = "mobile_money"
	PaymentCard        PaymentMethod = "card"
	PaymentOther       PaymentMethod = "other"
)

var validPaymentMethods = map[PaymentMethod]bool{
	PaymentCash:        true,
	PaymentMobileMoney: true,
	PaymentCard:        true,
	PaymentOther:       true,
}

// Expense maps to the expense table.
type Expense struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	Date          time.Time     `db:"expense_date" json:"date"`
	Category      Category      `db:"category" json:"category"`
	Amount        float64       `db:"amount" json:"amount"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"payment_method"`
	Note          *string       `db:"note" json:"note,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}
