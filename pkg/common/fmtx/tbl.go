package fmtx

import (
	"bytes"
	"fmt"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const (
	TblColWidth = 120
)

// TableMarshaler is implemented by values printed as name/value rows in table format
type TableMarshaler interface {
	MarshalTable() [][]any
}

// MarshalTable falls back to a single row holding the text form of the value
func MarshalTable(name string, value any) [][]any {
	marshaller, ok := value.(TableMarshaler)
	if ok {
		return marshaller.MarshalTable()
	}
	return [][]any{{name, MarshalText(value)}}
}

// TblList renders rows without header
func TblList(caption string, rows [][]any) string {
	return tbl(caption, nil, rows)
}

// TblRows renders rows under a header, cells beyond the header width are dropped
func TblRows(caption string, header []string, rows [][]any) string {
	return tbl(caption, header, lo.Map(rows, func(row []any, _ int) []any {
		if len(row) > len(header) {
			return row[:len(header)]
		}
		return row
	}))
}

func tbl(caption string, header []string, rows [][]any) string {
	sb := bytes.NewBufferString("\n")
	sb.WriteString(fmt.Sprintf("%s\n\n", caption))
	table := tablewriter.NewWriter(sb)
	table.SetColWidth(TblColWidth)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(lo.Map(rows, func(row []any, _ int) []string {
		return lo.Map(row, func(cell any, _ int) string { return TblValue(cell) })
	}))
	table.Render()
	sb.WriteString("\n")
	return sb.String()
}

func TblValue(value any) string {
	if value == nil {
		return "<empty>"
	}
	result := MarshalText(value)
	if len(result) == 0 {
		return "<empty>"
	}
	return result
}
