// Package store persists normalized transactions and the category/camp
// masters as CSV files under a data directory. It owns identifier assignment;
// callers never re-derive amounts or dates on stored records, only the
// category and camp fields are updated after import.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

const (
	ledgerFile     = "ledger.csv"
	categoriesFile = "categories.csv"
	campsFile      = "camps.csv"
)

// ErrNotFound reports an update against an unknown transaction ID.
var ErrNotFound = errors.New("transaction not found")

// Service provides ledger persistence rooted at a data directory.
type Service struct {
	dataDir string
}

// NewService creates a Service for the given data directory.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// Init creates the data directory with an empty ledger and a seeded category
// master. Existing files are left untouched.
func (s *Service) Init() error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	ledger := filepath.Join(s.dataDir, ledgerFile)
	if _, err := os.Stat(ledger); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(ledger, []byte(LedgerHeader+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing empty ledger: %w", err)
		}
	}

	catsPath := filepath.Join(s.dataDir, categoriesFile)
	if _, err := os.Stat(catsPath); errors.Is(err, fs.ErrNotExist) {
		cats := DefaultCategories()
		for i := range cats {
			cats[i].ID = uuid.New()
		}
		if err := s.writeCategories(cats); err != nil {
			return err
		}
	}

	campsPath := filepath.Join(s.dataDir, campsFile)
	if _, err := os.Stat(campsPath); errors.Is(err, fs.ErrNotExist) {
		if err := s.writeCamps(nil); err != nil {
			return err
		}
	}
	return nil
}

// BulkInsert assigns IDs to the given transactions and appends them to the
// ledger in order. Returns the stored transactions with IDs populated.
func (s *Service) BulkInsert(txns []model.Transaction) ([]model.Transaction, error) {
	for i := range txns {
		txns[i].ID = uuid.New()
	}

	path := filepath.Join(s.dataDir, ledgerFile)
	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
		if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, LedgerHeader); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, txns); err != nil {
		return nil, fmt.Errorf("appending transactions: %w", err)
	}
	return txns, nil
}

// All returns every stored transaction in insertion order.
func (s *Service) All() ([]model.Transaction, error) {
	path := filepath.Join(s.dataDir, ledgerFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return txns, nil
}

// UpdateCategory sets the category on one stored transaction.
func (s *Service) UpdateCategory(id uuid.UUID, category string) error {
	return s.updateField(id, func(txn *model.Transaction) {
		txn.Category = category
	})
}

// UpdateCamp sets the camp label on one stored transaction.
func (s *Service) UpdateCamp(id uuid.UUID, camp string) error {
	return s.updateField(id, func(txn *model.Transaction) {
		txn.Camp = camp
	})
}

// updateField rewrites the ledger with one transaction mutated.
func (s *Service) updateField(id uuid.UUID, mutate func(*model.Transaction)) error {
	txns, err := s.All()
	if err != nil {
		return err
	}

	found := false
	for i := range txns {
		if txns[i].ID == id {
			mutate(&txns[i])
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	f, err := os.Create(filepath.Join(s.dataDir, ledgerFile))
	if err != nil {
		return fmt.Errorf("rewriting ledger: %w", err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txns); err != nil {
		return fmt.Errorf("rewriting ledger: %w", err)
	}
	return nil
}

// Categories returns the category master.
func (s *Service) Categories() ([]model.Category, error) {
	f, err := os.Open(filepath.Join(s.dataDir, categoriesFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening categories: %w", err)
	}
	defer f.Close()

	return ReadCategories(f)
}

// AddCategory appends a new named category to the master.
func (s *Service) AddCategory(name string, categoryType model.CategoryType) (model.Category, error) {
	cats, err := s.Categories()
	if err != nil {
		return model.Category{}, err
	}
	for _, c := range cats {
		if c.Name == name {
			return model.Category{}, fmt.Errorf("category %q already exists", name)
		}
	}

	cat := model.Category{ID: uuid.New(), Name: name, Type: categoryType}
	cats = append(cats, cat)
	if err := s.writeCategories(cats); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

// Camps returns the camp master.
func (s *Service) Camps() ([]model.Camp, error) {
	f, err := os.Open(filepath.Join(s.dataDir, campsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening camps: %w", err)
	}
	defer f.Close()

	return ReadCamps(f)
}

// AddCamp appends a new named camp to the master.
func (s *Service) AddCamp(name string) (model.Camp, error) {
	camps, err := s.Camps()
	if err != nil {
		return model.Camp{}, err
	}
	for _, c := range camps {
		if c.Name == name {
			return model.Camp{}, fmt.Errorf("camp %q already exists", name)
		}
	}

	camp := model.Camp{ID: uuid.New(), Name: name}
	camps = append(camps, camp)
	if err := s.writeCamps(camps); err != nil {
		return model.Camp{}, err
	}
	return camp, nil
}

func (s *Service) writeCategories(cats []model.Category) error {
	f, err := os.Create(filepath.Join(s.dataDir, categoriesFile))
	if err != nil {
		return fmt.Errorf("creating categories file: %w", err)
	}
	defer f.Close()

	if err := WriteCategories(f, cats); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}

func (s *Service) writeCamps(camps []model.Camp) error {
	f, err := os.Create(filepath.Join(s.dataDir, campsFile))
	if err != nil {
		return fmt.Errorf("creating camps file: %w", err)
	}
	defer f.Close()

	if err := WriteCamps(f, camps); err != nil {
		return fmt.Errorf("writing camps: %w", err)
	}
	return nil
}
