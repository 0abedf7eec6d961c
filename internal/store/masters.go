package store

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

// ReadCategories reads the category master from a categories.csv reader.
func ReadCategories(r io.Reader) ([]model.Category, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categories CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var cats []model.Category
	for i, rec := range records[1:] {
		id, err := uuid.Parse(rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing id %q: %w", i+2, rec[0], err)
		}
		cats = append(cats, model.Category{ID: id, Name: rec[1], Type: model.CategoryType(rec[2])})
	}
	return cats, nil
}

// WriteCategories writes the category master (with header).
func WriteCategories(w io.Writer, cats []model.Category) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "name", "type"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range cats {
		if err := cw.Write([]string{c.ID.String(), c.Name, string(c.Type)}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadCamps reads the camp master from a camps.csv reader.
func ReadCamps(r io.Reader) ([]model.Camp, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading camps CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var camps []model.Camp
	for i, rec := range records[1:] {
		id, err := uuid.Parse(rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing id %q: %w", i+2, rec[0], err)
		}
		camps = append(camps, model.Camp{ID: id, Name: rec[1]})
	}
	return camps, nil
}

// WriteCamps writes the camp master (with header).
func WriteCamps(w io.Writer, camps []model.Camp) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "name"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range camps {
		if err := cw.Write([]string{c.ID.String(), c.Name}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
