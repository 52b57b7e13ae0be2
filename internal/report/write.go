// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paperscout/pkg/types"
)

// listSep joins list-valued fields within a single cell. Affiliation
// strings routinely contain commas, so a semicolon keeps cells readable.
const listSep = "; "

// Header returns the export column names in order. Every writer uses
// the same columns.
func Header() []string {
	return []string{
		"PubmedID",
		"Title",
		"Publication Year",
		"Non-academic Author(s)",
		"Company Affiliation(s)",
		"Corresponding Author Email",
	}
}

// Row returns one export row for r, columns in Header order, with
// list-valued fields joined by listSep.
func Row(r types.Record) []string {
	return []string{
		r.PubmedID,
		r.Title,
		r.Year,
		strings.Join(r.NonAcademicAuthors, listSep),
		strings.Join(r.CompanyAffiliations, listSep),
		r.Email,
	}
}

// WriteCSV writes a header row plus one row per record to w.
func WriteCSV(records []types.Record, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes records as indented JSON to w.
func WriteJSON(records []types.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// Save writes records to path, picking the format by extension: .xlsx
// produces a spreadsheet, anything else CSV. An existing file is
// overwritten. With no records nothing is written and no file is
// created. Progress messages go to out.
func Save(records []types.Record, path string, out io.Writer) error {
	if len(records) == 0 {
		fmt.Fprintln(out, "No data to save.")
		return nil
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		if err := WriteXLSX(records, path); err != nil {
			return err
		}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := WriteCSV(records, f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}
	}

	fmt.Fprintf(out, "Saved %d record(s) to %s\n", len(records), path)
	return nil
}

// Print writes records to w in a labeled block per record, one line per
// column.
func Print(records []types.Record, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers with industry-affiliated authors found.")
		return
	}

	header := Header()
	for i, r := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for j, value := range Row(r) {
			fmt.Fprintf(w, "%s: %s\n", header[j], value)
		}
	}
	fmt.Fprintf(w, "\n%d record(s)\n", len(records))
}
