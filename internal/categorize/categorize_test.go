package categorize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestKeywordRules(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"swim basen", "oplata za basen wrzesien", model.CategorySwimLessons},
		{"swim lessons", "nauka plywania grupa 2", model.CategorySwimLessons},
		{"training", "trening sobota", model.CategoryTraining},
		{"training hall", "wynajem hala sportowa", model.CategoryTraining},
		{"camp keyword", "oboz zimowy zaliczka", model.CategoryTouristService},
		{"trip keyword", "wycieczka gorska", model.CategoryTouristService},
		{"lodging keyword", "zakwaterowanie grupy", model.CategoryTouristService},
		{"date plus place", "pobyt? 15-17 Zakopane", model.CategoryTouristService},
		{"date plus place dot", "3.08 krynica", model.CategoryTouristService},
		{"place without date", "pozdrowienia z zakopanego", ""},
		{"date without place", "platnosc 15-17", ""},
		{"cap", "zakup czepek klubowy", model.CategoryCapPurchase},
		{"entry fee", "wpisowe 2024", model.CategoryEntryFee},
		{"invoice", "faktura 12/2024", model.CategoryVATInvoice},
		{"clothing", "stroj kapielowy", model.CategoryClothing},
		{"no match", "przelew wlasny", ""},
		{"case insensitive", "TRENING PONIEDZIALEK", model.CategoryTraining},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, match(tt.title))
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	// Swim rules sit above training rules in the table.
	assert.Equal(t, model.CategorySwimLessons, match("trening na basenie"))
}

func TestSenderFallback(t *testing.T) {
	got := Categorize("przelew", "Szkola Plywania Delfin - basen", dec("100"))
	assert.Equal(t, model.CategorySwimLessons, got)
}

func TestNegativeSignOverridesKeywords(t *testing.T) {
	got := Categorize("oplata za basen", "ktos", dec("-50"))
	assert.Equal(t, model.CategoryExpense, got)
}

func TestNonNegativeDefault(t *testing.T) {
	// Unmatched income defaults to the tourist-service label, a business
	// default rather than an unknown state.
	assert.Equal(t, model.CategoryTouristService, Categorize("przelew wlasny", "Jan Kowalski", dec("100")))
	assert.Equal(t, model.CategoryTouristService, Categorize("", "", decimal.Zero))
}

func TestTitleTakesPrecedenceOverSender(t *testing.T) {
	got := Categorize("wpisowe za sezon", "Szkola Plywania", dec("100"))
	assert.Equal(t, model.CategoryEntryFee, got)
}
