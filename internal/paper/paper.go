// Package paper defines the core domain types for the dashboard dataset.
package paper

// RawField is a CSV cell that may be absent. A cell is absent when its
// column is missing from the file header or the row is too short to carry
// it; an empty string in the file is present, not absent.
type RawField struct {
	Value   string
	Present bool
}

// String returns the field value, or "" when the field is absent.
func (f RawField) String() string {
	return f.Value
}

// Field constructs a present RawField.
func Field(v string) RawField {
	return RawField{Value: v, Present: true}
}

// RawPaper is one row of a category file before normalization. Category is
// assigned exactly once, at load time, from the source file's base name.
type RawPaper struct {
	ArxivID         RawField
	Title           RawField
	Authors         RawField
	Subjects        RawField
	AbstractURL     RawField
	PDFURL          RawField
	HTMLURL         RawField
	OtherFormatsURL RawField
	Category        string
}

// Paper is a fully-typed record of the unified dataset. Authors and
// Subjects are never nil, only possibly empty.
type Paper struct {
	ArxivID    string   `json:"arxiv_id"`
	Title      string   `json:"title"`
	CleanTitle string   `json:"clean_title"`
	Authors    []string `json:"authors"`
	Subjects   []string `json:"subjects"`
	Category   string   `json:"category"`

	// Descriptive URLs; empty when the source file had no value.
	AbstractURL     string `json:"abstract_url,omitempty"`
	PDFURL          string `json:"pdf_url,omitempty"`
	HTMLURL         string `json:"html_url,omitempty"`
	OtherFormatsURL string `json:"other_formats_url,omitempty"`
}
