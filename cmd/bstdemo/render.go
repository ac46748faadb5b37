package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

func okString(ok bool) string {
	if ok {
		return okColor.Sprint(strconv.FormatBool(ok))
	}

	return failColor.Sprint(strconv.FormatBool(ok))
}

// writeReport writes rep to w in the given format.
func writeReport(w io.Writer, rep report, format string) error {
	var err error

	switch format {
	case formatTree:
		_, err = io.WriteString(w, rep.Shape)
	case formatPlain:
		err = writePlain(w, rep)
	default:
		err = writeTable(w, rep)
	}

	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func writePlain(w io.Writer, rep report) error {
	for _, s := range rep.Steps {
		if _, err := fmt.Fprintf(w, "%s(%d) = %t\n", s.Op, s.Value, s.OK); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "in-order: %v\n", rep.Sorted)

	return err
}

func writeTable(w io.Writer, rep report) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "operation", "value", "result"})

	for i, s := range rep.Steps {
		tbl.AppendRow(table.Row{i + 1, s.Op, s.Value, okString(s.OK)})
	}

	tbl.AppendFooter(table.Row{"", "in-order", fmt.Sprint(rep.Sorted), fmt.Sprintf("height %d", rep.Height)})

	_, err := fmt.Fprintf(w, "%s\n%s", tbl.Render(), rep.Shape)

	return err
}
