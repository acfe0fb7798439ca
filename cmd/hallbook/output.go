package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// table is data prepared for tabular output
type table struct {
	headers []string
	rows    [][]string
}

func (t *table) add(cells ...any) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}

// outputFormat resolves the --output flag, defaulting to a table on a
// terminal and JSON when piped
func (a *app) outputFormat() (string, error) {
	switch f := strings.ToLower(a.format); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	case "":
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return formatTable, nil
		}
		return formatJSON, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml", a.format)
	}
}

// render writes data in the selected format. t is used for table output.
func (a *app) render(w io.Writer, t table, data any) error {
	format, err := a.outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case formatYAML:
		out, err := yaml.MarshalWithOptions(data, yaml.Indent(2), yaml.IndentSequence(false))
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return writeTable(w, t)
	}
}

func writeTable(w io.Writer, t table) error {
	tw := tablewriter.NewTable(w)
	if len(t.headers) > 0 {
		headers := make([]any, len(t.headers))
		for i, h := range t.headers {
			headers[i] = h
		}
		tw.Header(headers...)
	}
	for _, row := range t.rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := tw.Append(cells...); err != nil {
			return err
		}
	}
	return tw.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func rupees(n int) string {
	return "₹" + groupDigits(n)
}

// groupDigits formats n with Indian digit grouping (12,34,567)
func groupDigits(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprint(n)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		s = strings.Join(parts, ",") + "," + tail
	}
	if neg {
		s = "-" + s
	}
	return s
}
