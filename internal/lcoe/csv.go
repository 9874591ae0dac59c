package lcoe

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

var ledgerHeader = []string{
	"year",
	"discount_factor",
	"opex_cost",
	"tax_shield",
	"energy",
	"discounted_energy",
	"cum_cost",
	"cum_energy",
}

// WriteLedgerCSV writes the ledger with a header row.
func WriteLedgerCSV(out io.Writer, ledger []YearRow) error {
	w := csv.NewWriter(out)
	if err := w.Write(ledgerHeader); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.DiscountFactor),
			fmtFloat(r.OpexCost),
			fmtFloat(r.TaxShield),
			fmtFloat(r.Energy),
			fmtFloat(r.DiscountedEnergy),
			fmtFloat(r.CumCost),
			fmtFloat(r.CumEnergy),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteLedgerCSVFile creates (or truncates) path and writes the ledger to it.
func WriteLedgerCSVFile(path string, ledger []YearRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteLedgerCSV(f, ledger); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// fmtFloat uses the shortest representation that parses back to x.
func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
