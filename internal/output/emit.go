// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v3"
)

// Emit writes the dataset to w in the requested format. cols fixes both the
// column selection and its order; text output optionally carries a title
// row.
func Emit(w io.Writer, dataset []map[string]interface{}, cols []string, format string, titles bool) error {
	switch format {
	case "json":
		out, err := json.Marshal(dataset)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		w.Write(out)
		fmt.Fprintln(w)
	case "yaml":
		out, err := yaml.Marshal(dataset)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		w.Write(out)
	default:
		TableWriter(w, dataset, cols, titles)
	}
	return nil
}

// TableWriter renders the result set in a tabular form honoring the titles
// option.
func TableWriter(w io.Writer, resultSet []map[string]interface{}, cols []string, titles bool) {
	if len(resultSet) == 0 {
		return
	}

	cellStyle := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Left)

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(cols))
		for _, col := range cols {
			row = append(row, InterfaceToString(result[col], "-"))
		}
		rows = append(rows, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		}).
		Rows(rows...)

	if titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(cols...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// InterfaceToString renders a single cell value, substituting missing for
// nils and empty strings.
func InterfaceToString(v interface{}, missing string) string {
	switch val := v.(type) {
	case nil:
		return missing
	case string:
		if val == "" {
			return missing
		}
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
