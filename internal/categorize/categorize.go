// Package categorize assigns category labels from statement text heuristics.
// The rule set is an ordered table evaluated first-match-wins so the business
// rules stay auditable and testable one by one.
package categorize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

// dayMonthPattern matches a short trip date like "15-17" or "3.08" inside
// transfer titles.
var dayMonthPattern = regexp.MustCompile(`\d{1,2}[-.]\d{1,2}`)

// campPlaces are resort towns that, next to a day-month pattern, indicate a
// camp stay even without an explicit camp keyword.
var campPlaces = []string{"krynica", "poronin", "jurgow", "bialka", "zakopane"}

type rule struct {
	label    string
	keywords []string
	extra    func(lower string) bool // ORed with the keyword match
}

// rules is evaluated top to bottom against lower-cased text. Keyword lists
// carry both accented and folded spellings since callers may pass either.
var rules = []rule{
	{
		label:    model.CategorySwimLessons,
		keywords: []string{"plywania", "pływania", "basen", "pływalnia"},
	},
	{
		label:    model.CategoryTraining,
		keywords: []string{"trening", "szkolenie", "hala"},
	},
	{
		label: model.CategoryTouristService,
		keywords: []string{
			"obóz", "oboz", "turyst", "pobyt", "zaliczka", "wyjazd",
			"wycieczka", "kwatera", "zakwaterowanie", "camp",
		},
		extra: func(lower string) bool {
			if !dayMonthPattern.MatchString(lower) {
				return false
			}
			for _, place := range campPlaces {
				if strings.Contains(lower, place) {
					return true
				}
			}
			return false
		},
	},
	{label: model.CategoryCapPurchase, keywords: []string{"czepek"}},
	{label: model.CategoryEntryFee, keywords: []string{"wpisowe"}},
	{label: model.CategoryVATInvoice, keywords: []string{"faktura"}},
	{label: model.CategoryClothing, keywords: []string{"ubrania", "odziez", "stroj"}},
}

// Categorize assigns a category from title and sender text plus the amount
// sign. Negative amounts always categorize as an expense regardless of text;
// unmatched non-negative rows default to the tourist-service label.
func Categorize(title, sender string, amount decimal.Decimal) string {
	category := match(title)
	if category == "" {
		category = match(sender)
	}

	if amount.IsNegative() {
		return model.CategoryExpense
	}
	if category == "" {
		return model.CategoryTouristService
	}
	return category
}

// match runs the rule table over one text field. Returns the empty string
// when no rule applies.
func match(text string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.label
			}
		}
		if r.extra != nil && r.extra(lower) {
			return r.label
		}
	}
	return ""
}
