package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

// LedgerHeader is the CSV header for ledger.csv.
const LedgerHeader = "id,date,amount,original_amount,currency,sender,title,category,camp,source_file"

const (
	ledgerFields  = 10
	dateFormat    = "2006-01-02"
	colID         = 0
	colDate       = 1
	colAmount     = 2
	colOriginal   = 3
	colCurrency   = 4
	colSender     = 5
	colTitle      = 6
	colCategory   = 7
	colCamp       = 8
	colSourceFile = 9
)

// ReadTransactions reads all transactions from a ledger.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = ledgerFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a ledger.csv writer (with header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(LedgerHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends transactions to an existing ledger (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, ledgerFields)
	row[colID] = txn.ID.String()
	row[colDate] = txn.Date.Format(dateFormat)
	row[colAmount] = txn.Amount.StringFixed(2)
	if txn.OriginalAmount.Valid {
		row[colOriginal] = txn.OriginalAmount.Decimal.StringFixed(2)
	}
	row[colCurrency] = string(txn.Currency)
	row[colSender] = txn.Sender
	row[colTitle] = txn.Title
	row[colCategory] = txn.Category
	row[colCamp] = txn.Camp
	row[colSourceFile] = txn.SourceFile
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != ledgerFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", ledgerFields, len(record))
	}

	id, err := uuid.Parse(record[colID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var original decimal.NullDecimal
	if record[colOriginal] != "" {
		d, err := decimal.NewFromString(record[colOriginal])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing original_amount %q: %w", record[colOriginal], err)
		}
		original = decimal.NullDecimal{Decimal: d, Valid: true}
	}

	return model.Transaction{
		ID:             id,
		Date:           date,
		Amount:         amount,
		OriginalAmount: original,
		Currency:       model.Currency(record[colCurrency]),
		Sender:         record[colSender],
		Title:          record[colTitle],
		Category:       record[colCategory],
		Camp:           record[colCamp],
		SourceFile:     record[colSourceFile],
	}, nil
}
