package store

import "github.com/skarbnik-dev/skarbnik/internal/model"

// DefaultCategories returns the seed category master for a new data
// directory. IDs are assigned on save.
func DefaultCategories() []model.Category {
	return []model.Category{
		{Name: model.CategoryTouristService, Type: model.CategoryTypeIncome},
		{Name: model.CategoryTouristService + " FAKTURA", Type: model.CategoryTypeIncome},
		{Name: model.CategorySwimLessons, Type: model.CategoryTypeIncome},
		{Name: model.CategorySwimLessons + " FAKTURA", Type: model.CategoryTypeIncome},
		{Name: model.CategoryTraining, Type: model.CategoryTypeIncome},
		{Name: model.CategoryTraining + " FAKTURA", Type: model.CategoryTypeIncome},
		{Name: model.CategoryEntryFee, Type: model.CategoryTypeIncome},
		{Name: model.CategoryCapPurchase, Type: model.CategoryTypeIncome},
		{Name: model.CategoryClothing, Type: model.CategoryTypeExpense},
		{Name: model.CategoryVATInvoice, Type: model.CategoryTypeExpense},
	}
}
