package model

import "github.com/google/uuid"

// CategoryType classifies categories for reporting.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Well-known category labels assigned by the categorizer.
const (
	CategorySwimLessons    = "nauka pływania"
	CategoryTraining       = "Szkolenie"
	CategoryTouristService = "usługa turystyczna"
	CategoryCapPurchase    = "zakup czepek"
	CategoryEntryFee       = "wpisowe"
	CategoryVATInvoice     = "FAKTURA VAT"
	CategoryClothing       = "zakup ubrania"
	CategoryExpense        = "Koszt"
)

// Category is a row in categories.csv.
type Category struct {
	ID   uuid.UUID
	Name string
	Type CategoryType
}

// Camp is a row in camps.csv.
type Camp struct {
	ID   uuid.UUID
	Name string
}
