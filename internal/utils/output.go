package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/nescli/nescli/internal/boxtable"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	OutputTable = "table"
	OutputText  = "text"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

var ErrUnsupportedOutput = errors.New("unsupported output format")

// PrintTextTableJsonArrayOutput prints items in the given output format.
// Table headers come from the `table` struct tag, falling back to the field
// name; fields tagged `table:"-"` are left out of table and text output.
func PrintTextTableJsonArrayOutput[T any](w io.Writer, output string, items []T, opts boxtable.Options) error {
	switch output {
	case OutputJSON:
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode json output")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case OutputYAML:
		data, err := yaml.Marshal(items)
		if err != nil {
			return errors.Wrap(err, "failed to encode yaml output")
		}
		_, err = w.Write(data)
		return err
	case OutputText:
		for _, row := range tableRows(items)[1:] {
			if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
		return nil
	case OutputTable, "":
		opts.Header = true
		return boxtable.Fprint(w, tableRows(items), opts)
	default:
		return errors.Wrapf(ErrUnsupportedOutput, "%q (expected table, text, json or yaml)", output)
	}
}

// tableRows returns a header row followed by one row per item.
func tableRows[T any](items []T) [][]string {
	typ := reflect.TypeFor[T]()
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	var fields []int
	var header []string
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("table")
		if !field.IsExported() || tag == "-" {
			continue
		}
		if tag == "" {
			tag = field.Name
		}
		fields = append(fields, i)
		header = append(header, tag)
	}

	rows := [][]string{header}
	for _, item := range items {
		v := reflect.ValueOf(item)
		for v.Kind() == reflect.Pointer {
			v = v.Elem()
		}
		row := make([]string, 0, len(fields))
		for _, i := range fields {
			row = append(row, fmt.Sprint(v.Field(i).Interface()))
		}
		rows = append(rows, row)
	}
	return rows
}
