package reportservice

import (
	"bytes"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/pkg/errors"
)

type wordRenderer struct{}

func (wordRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (wordRenderer) Extension() string { return "docx" }

func (wordRenderer) Render(doc Document) ([]byte, error) {
	out, err := godocx.NewDocument()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create docx")
	}

	if _, err := out.AddHeading(doc.Title, 0); err != nil {
		return nil, errors.Wrap(err, "failed to add title")
	}
	out.AddParagraph("Organization: " + doc.Organization)
	out.AddParagraph("Generated: " + doc.generatedAtLabel())

	if _, err := out.AddHeading("Summary", 1); err != nil {
		return nil, errors.Wrap(err, "failed to add summary heading")
	}
	for _, line := range strings.Split(doc.Narrative, "\n") {
		out.AddParagraph(line)
	}

	for _, section := range doc.Sections {
		if _, err := out.AddHeading(section.Heading, 1); err != nil {
			return nil, errors.Wrapf(err, "failed to add heading %q", section.Heading)
		}
		for _, kv := range section.KeyValues {
			p := out.AddParagraph("")
			p.AddText(kv.Key + ": ").Bold(true)
			p.AddText(kv.Value)
		}
		if section.Table == nil {
			continue
		}

		tbl := out.AddTable()
		tbl.Style("LightList-Accent1")
		header := tbl.AddRow()
		for _, col := range section.Table.Columns {
			header.AddCell().AddParagraph(col)
		}
		for _, row := range section.Table.Rows {
			r := tbl.AddRow()
			for _, cell := range row {
				r.AddCell().AddParagraph(cell)
			}
		}
		out.AddParagraph("")
	}

	var buf bytes.Buffer
	if err := out.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render docx")
	}
	return buf.Bytes(), nil
}
