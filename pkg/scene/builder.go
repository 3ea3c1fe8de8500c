package scene

import "strings"

// Builder accumulates records in insertion order.
// It does not inspect, reorder or deduplicate what it is given.
type Builder struct {
	records []Record
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{records: make([]Record, 0)}
}

// Add appends one record
func (b *Builder) Add(record Record) {
	b.records = append(b.records, record)
}

// Len returns the number of records added so far
func (b *Builder) Len() int {
	return len(b.records)
}

// Render joins the records with single commas. This is the body of the
// document array, without the enclosing brackets.
func (b *Builder) Render() string {
	var sb strings.Builder
	for i, r := range b.records {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.Write(r)
	}
	return sb.String()
}

// Document wraps Render in brackets, producing the full JSON array
func (b *Builder) Document() []byte {
	return []byte("[" + b.Render() + "]")
}
