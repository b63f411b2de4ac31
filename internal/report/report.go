// Package report prints search results and brand counts for non-interactive
// use, such as piping into other tools.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/cli/go-gh/v2/pkg/text"

	"github.com/altin/fault-finder/internal/dataset"
	"github.com/altin/fault-finder/internal/model"
	"github.com/altin/fault-finder/internal/search"
)

const absent = "-"

// Results writes the summary line followed by one table row per record.
// On a terminal the table gets a header and long cells are truncated to fit
// width; otherwise rows are tab separated.
func Results(w io.Writer, results []model.FaultRecord, isTTY bool, width int) error {
	if isTTY {
		if _, err := fmt.Fprintln(w, search.Summary(results)); err != nil {
			return err
		}
	}
	if len(results) == 0 {
		return nil
	}

	tp := tableprinter.New(w, isTTY, width)
	tp.AddHeader([]string{"BRAND", "CODE", "MODEL", "CAUSE", "CHECK"})
	for _, r := range results {
		tp.AddField(r.Brand)
		tp.AddField(r.FaultCode)
		tp.AddField(r.Model)
		tp.AddField(optional(r.Cause()))
		tp.AddField(optional(r.Check()))
		tp.EndRow()
	}
	return tp.Render()
}

// Brands writes one row per brand with its record count.
func Brands(w io.Writer, counts []dataset.BrandCount, isTTY bool, width int) error {
	tp := tableprinter.New(w, isTTY, width)
	tp.AddHeader([]string{"BRAND", "FAULT CODES"})
	total := 0
	for _, c := range counts {
		tp.AddField(c.Brand)
		tp.AddField(strconv.Itoa(c.Count))
		tp.EndRow()
		total += c.Count
	}
	if err := tp.Render(); err != nil {
		return err
	}
	if isTTY {
		_, err := fmt.Fprintf(w, "\n%s across %s\n",
			text.Pluralize(total, "fault code"), text.Pluralize(len(counts), "brand"))
		return err
	}
	return nil
}

func optional(v string, ok bool) string {
	if !ok || v == "" {
		return absent
	}
	return v
}
