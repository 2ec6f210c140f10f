package reportservice

import "time"

// Document is the format independent layout of a report. Every renderer
// draws the same header block followed by the sections in order.
type Document struct {
	Title        string
	Organization string
	GeneratedAt  time.Time
	Narrative    string
	Sections     []Section
}

// Section holds key/value pairs, a table, or both.
type Section struct {
	Heading   string
	KeyValues []KeyValue
	Table     *Table
}

type KeyValue struct {
	Key   string
	Value string
}

type Table struct {
	Columns []string
	Rows    [][]string
}

// Renderer turns a Document into one binary file format.
type Renderer interface {
	Render(doc Document) ([]byte, error)
	ContentType() string
	Extension() string
}

func renderers() map[string]Renderer {
	return map[string]Renderer{
		FormatPDF:   pdfRenderer{},
		FormatWord:  wordRenderer{},
		FormatExcel: excelRenderer{},
	}
}

func (d Document) generatedAtLabel() string {
	return d.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")
}
