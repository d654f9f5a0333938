package report

import "github.com/spacesedan/sentiboard/internal/models"

type SectionKind string

const (
	SectionHeading  SectionKind = "heading"
	SectionMarkdown SectionKind = "markdown"
	SectionTable    SectionKind = "table"
	SectionImage    SectionKind = "image"
	SectionColumns  SectionKind = "columns"
	SectionAlert    SectionKind = "alert"
)

type AlertLevel string

const (
	AlertInfo    AlertLevel = "info"
	AlertSuccess AlertLevel = "success"
	AlertWarning AlertLevel = "warning"
	AlertError   AlertLevel = "error"
)

// Section is one block of a rendered page. Only the fields matching Kind
// are set.
type Section struct {
	Kind SectionKind

	Level int
	Text  string

	Table   *Table
	Image   *Image
	Alert   *Alert
	Columns [][]Section
}

type Table struct {
	Columns []string
	Rows    [][]string
}

type Image struct {
	Alt    string
	PNG    []byte
	Width  int
	Height int
}

// Alert text is shown as is; Strong follows it in bold.
type Alert struct {
	Level  AlertLevel
	Text   string
	Strong string
}

type ControlKind string

const (
	ControlSelect   ControlKind = "select"
	ControlTextArea ControlKind = "textarea"
)

// Control is the view specific input shown under the page title.
type Control struct {
	Kind    ControlKind
	Heading string
	Label   string
	Options []string
	Value   string
	Submit  string
}

// Page is everything one render produces.
type Page struct {
	View     models.View
	Title    string
	Control  *Control
	Sections []Section
}

func heading(level int, text string) Section {
	return Section{Kind: SectionHeading, Level: level, Text: text}
}

func markdown(text string) Section {
	return Section{Kind: SectionMarkdown, Text: text}
}

func alert(level AlertLevel, text, strong string) Section {
	return Section{Kind: SectionAlert, Alert: &Alert{Level: level, Text: text, Strong: strong}}
}

func image(alt string, png []byte, width, height int) Section {
	return Section{Kind: SectionImage, Image: &Image{Alt: alt, PNG: png, Width: width, Height: height}}
}

func columns(cols ...[]Section) Section {
	return Section{Kind: SectionColumns, Columns: cols}
}

func table(records []models.Review, cols []models.TextColumn) Section {
	t := &Table{Columns: make([]string, len(cols)), Rows: make([][]string, len(records))}
	for i, c := range cols {
		t.Columns[i] = c.Name
	}
	for i, r := range records {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = c.Value(r)
		}
		t.Rows[i] = row
	}
	return Section{Kind: SectionTable, Table: t}
}
