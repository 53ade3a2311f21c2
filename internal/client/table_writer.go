/*
 *   Copyright 2021 SAP SE
 *
 *   Licensed under the Apache License, Version 2.0 (the "License");
 *   you may not use this file except in compliance with the License.
 *   You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 *   Unless required by applicable law or agreed to in writing, software
 *   distributed under the License is distributed on an "AS IS" BASIS,
 *   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *   See the License for the specific language governing permissions and
 *   limitations under the License.
 */

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/sapcc/pnswitch/internal/netvisor"
)

func formatValue(v reflect.Value) string {
	switch kind := v.Kind(); kind {
	case reflect.Bool:
		return fmt.Sprintf("%t", v.Bool())
	case reflect.Ptr:
		if v.IsNil() {
			return ""
		}
		return formatValue(v.Elem())
	default:
		return fmt.Sprintf("%v", v)
	}
}

type column struct {
	header string
	index  []int
}

// visibleColumns returns the json named fields of Report which carry a value
// in at least one report. Booleans are always shown.
func visibleColumns(reports []netvisor.Report) []column {
	var columns []column
	tm := Mapper.TypeMap(reflect.TypeOf(netvisor.Report{}))
	for _, fi := range tm.Index {
		if fi.Embedded || len(fi.Index) != 1 {
			continue
		}
		for _, r := range reports {
			field := reflect.ValueOf(r).FieldByIndex(fi.Index)
			if field.Kind() == reflect.Bool || !field.IsZero() {
				columns = append(columns, column{header: fi.Name, index: fi.Index})
				break
			}
		}
	}
	return columns
}

// WriteReports renders reports in the given output format.
func WriteReports(w io.Writer, format string, reports []netvisor.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	columns := visibleColumns(reports)

	if len(reports) == 1 {
		// For a single report, we transpose the key-value to rows
		v := reflect.ValueOf(reports[0])
		for _, c := range columns {
			t.AppendRow(table.Row{c.header, formatValue(v.FieldByIndex(c.index))})
		}
	} else {
		header := make(table.Row, 0, len(columns))
		for _, c := range columns {
			header = append(header, c.header)
		}
		if format != "value" {
			t.AppendHeader(header)
		}
		for _, r := range reports {
			v := reflect.ValueOf(r)
			row := make(table.Row, 0, len(columns))
			for _, c := range columns {
				row = append(row, formatValue(v.FieldByIndex(c.index)))
			}
			t.AppendRow(row)
		}
	}

	switch format {
	case "table":
		t.SetStyle(table.StyleLight)
		t.Render()
	case "csv":
		t.RenderCSV()
	case "markdown":
		t.RenderMarkdown()
	case "value":
		t.SetStyle(table.Style{
			Name: "value",
			Box: table.BoxStyle{
				MiddleHorizontal: " ",
				MiddleVertical:   " ",
			},
			Options: table.OptionsNoBorders,
		})
		t.Render()
	default:
		return fmt.Errorf("format option %s is not supported", format)
	}
	return nil
}
