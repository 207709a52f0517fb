// dataset/csv.go
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

var csvHeader = []string{
	"year", "exposure", "credit_score", "collateral",
	"repossessed", "loss_repo", "loss_cure", "lgd",
}

// WriteCSV writes records with a header row. Undefined conditional losses
// are written as empty fields.
func WriteCSV(w io.Writer, recs []LoanRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range recs {
		row := []string{
			strconv.Itoa(r.Year),
			f(r.Exposure),
			strconv.Itoa(r.CreditScore),
			r.Collateral,
			strconv.FormatBool(r.Repossessed),
			optF(r.LossRepo),
			optF(r.LossCure),
			f(r.LGD),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV reads records written by WriteCSV.
func ReadCSV(r io.Reader) ([]LoanRecord, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("bad header (want %d cols, got %d)", len(csvHeader), len(header))
	}

	var recs []LoanRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(recs)+2, err)
		}
		recs = append(recs, rec)
	}
}

func parseRow(row []string) (LoanRecord, error) {
	var rec LoanRecord
	var err error

	if rec.Year, err = strconv.Atoi(row[0]); err != nil {
		return rec, fmt.Errorf("bad year %q: %w", row[0], err)
	}
	if rec.Exposure, err = strconv.ParseFloat(row[1], 64); err != nil {
		return rec, fmt.Errorf("bad exposure %q: %w", row[1], err)
	}
	if rec.CreditScore, err = strconv.Atoi(row[2]); err != nil {
		return rec, fmt.Errorf("bad credit_score %q: %w", row[2], err)
	}
	rec.Collateral = row[3]
	if rec.Repossessed, err = strconv.ParseBool(row[4]); err != nil {
		return rec, fmt.Errorf("bad repossessed %q: %w", row[4], err)
	}
	if rec.LossRepo, err = parseOptF(row[5]); err != nil {
		return rec, fmt.Errorf("bad loss_repo %q: %w", row[5], err)
	}
	if rec.LossCure, err = parseOptF(row[6]); err != nil {
		return rec, fmt.Errorf("bad loss_cure %q: %w", row[6], err)
	}
	if rec.LGD, err = strconv.ParseFloat(row[7], 64); err != nil {
		return rec, fmt.Errorf("bad lgd %q: %w", row[7], err)
	}
	return rec, nil
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func optF(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return f(v)
}

func parseOptF(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
