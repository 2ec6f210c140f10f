package reportservice

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const maxSheetNameLen = 31

type excelRenderer struct{}

func (excelRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (excelRenderer) Extension() string { return "xlsx" }

// Render writes the header block and key/value pairs to a Summary sheet and
// every table to a sheet of its own.
func (excelRenderer) Render(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, errors.Wrap(err, "failed to name summary sheet")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create header style")
	}

	rows := [][]interface{}{
		{doc.Title},
		{"Organization", doc.Organization},
		{"Generated", doc.generatedAtLabel()},
		{"Summary", doc.Narrative},
		{},
	}
	for _, section := range doc.Sections {
		if len(section.KeyValues) == 0 {
			continue
		}
		rows = append(rows, []interface{}{section.Heading})
		for _, kv := range section.KeyValues {
			rows = append(rows, []interface{}{kv.Key, kv.Value})
		}
		rows = append(rows, []interface{}{})
	}
	if err := writeRows(f, summary, rows); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(summary, "A1", "A4", bold); err != nil {
		return nil, errors.Wrap(err, "failed to style summary sheet")
	}
	if err := f.SetColWidth(summary, "A", "A", 24); err != nil {
		return nil, errors.Wrap(err, "failed to size summary sheet")
	}

	used := map[string]bool{summary: true}
	for _, section := range doc.Sections {
		t := section.Table
		if t == nil {
			continue
		}
		name := sheetName(section.Heading, used)
		if _, err := f.NewSheet(name); err != nil {
			return nil, errors.Wrapf(err, "failed to add sheet %s", name)
		}

		tableRows := make([][]interface{}, 0, len(t.Rows)+1)
		tableRows = append(tableRows, toCells(t.Columns))
		for _, row := range t.Rows {
			tableRows = append(tableRows, toCells(row))
		}
		if err := writeRows(f, name, tableRows); err != nil {
			return nil, err
		}

		lastHeader, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to address header row")
		}
		if err := f.SetCellStyle(name, "A1", lastHeader, bold); err != nil {
			return nil, errors.Wrap(err, "failed to style header row")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to render xlsx")
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "failed to address row")
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write row %d of %s", i+1, sheet)
		}
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// sheetName trims a heading to a valid, unique sheet name.
func sheetName(heading string, used map[string]bool) string {
	base := heading
	if base == "" {
		base = "Data"
	}
	if len(base) > maxSheetNameLen {
		base = base[:maxSheetNameLen]
	}
	name := base
	for i := 2; used[name]; i++ {
		suffix := fmt.Sprintf(" %d", i)
		trimmed := base
		if len(trimmed)+len(suffix) > maxSheetNameLen {
			trimmed = trimmed[:maxSheetNameLen-len(suffix)]
		}
		name = trimmed + suffix
	}
	used[name] = true
	return name
}
