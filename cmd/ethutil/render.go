package main

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// field is one named value of a command result.
type field struct {
	Key   string
	Value any
}

// renderFields prints a single result as a two column table, or as an object
// in json and yaml output.
func (o *Operator) renderFields(fields ...field) {
	switch o.output {
	case OutputJSON, OutputYAML:
		obj := make(map[string]any, len(fields))
		for _, f := range fields {
			obj[f.Key] = f.Value
		}
		o.encode(obj)
	default:
		t := table.NewWriter()
		t.SetOutputMirror(o.out)
		t.AppendHeader(table.Row{"Field", "Value"})
		for _, f := range fields {
			t.AppendRow(table.Row{f.Key, f.Value})
		}
		t.Render()
	}
}

// renderRecords prints rows under header, or a list of objects keyed by header
// in json and yaml output.
func (o *Operator) renderRecords(header []string, rows [][]any) {
	switch o.output {
	case OutputJSON, OutputYAML:
		list := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			obj := make(map[string]any, len(header))
			for i, h := range header {
				if i < len(row) {
					obj[h] = row[i]
				}
			}
			list = append(list, obj)
		}
		o.encode(list)
	default:
		t := table.NewWriter()
		t.SetOutputMirror(o.out)
		headerRow := make(table.Row, len(header))
		for i, h := range header {
			headerRow[i] = h
		}
		t.AppendHeader(headerRow)
		t.AppendSeparator()
		for _, row := range rows {
			t.AppendRow(table.Row(row))
		}
		t.Render()
	}
}

func (o *Operator) encode(v any) {
	var (
		data []byte
		err  error
	)
	if o.output == OutputYAML {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		fmt.Fprintf(o.out, "Failed to encode result: %s\n", err.Error())
		return
	}
	o.out.Write(data)
}
