// Package form holds the ordered set of labeled fields a feedback dialog
// collects. It owns no UI: values are read lazily through ValueSource
// closures supplied by whatever renders the inputs.
package form

// ValueSource returns the current text of an input.
type ValueSource func() string

// Static returns a ValueSource that always yields v.
func Static(v string) ValueSource {
	return func() string { return v }
}

// Field is a caller-defined labeled input.
type Field struct {
	Label string
	Value ValueSource
}

// Entry is a label/value pair read from a Field at submit time.
type Entry struct {
	Label string
	Value string
}

// Model is the ordered list of field labels registered before display.
// Labels are not validated and may repeat.
type Model struct {
	labels []string
}

// NewModel returns a model holding the given labels in order.
func NewModel(labels ...string) *Model {
	m := &Model{}
	for _, l := range labels {
		m.AddField(l)
	}
	return m
}

// AddField appends a field with the given label and returns the model for chaining.
func (m *Model) AddField(label string) *Model {
	m.labels = append(m.labels, label)
	return m
}

// Labels returns a copy of the labels in insertion order.
func (m *Model) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// Len returns the number of registered fields.
func (m *Model) Len() int {
	return len(m.labels)
}

// Bind pairs each label with the value source at the same position.
// It returns false when the number of sources does not match the number of labels.
func (m *Model) Bind(sources []ValueSource) ([]Field, bool) {
	if len(sources) != len(m.labels) {
		return nil, false
	}
	fields := make([]Field, len(m.labels))
	for i, label := range m.labels {
		fields[i] = Field{Label: label, Value: sources[i]}
	}
	return fields, true
}

// Form is the aggregate read on every submit attempt: the primary feedback
// value plus the custom fields in their serialization order.
type Form struct {
	Primary ValueSource
	fields  []Field
}

// New builds a form over the given primary source and fields.
// The field slice is copied so later changes by the caller are not observed.
func New(primary ValueSource, fields ...Field) Form {
	fs := make([]Field, len(fields))
	copy(fs, fields)
	return Form{Primary: primary, fields: fs}
}

// Fields returns a read-only view of the fields in insertion order.
func (f Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// PrimaryValue reads the primary feedback input. A nil source reads as empty.
func (f Form) PrimaryValue() string {
	return read(f.Primary)
}

// Entries reads every custom field once, preserving order.
func (f Form) Entries() []Entry {
	entries := make([]Entry, len(f.fields))
	for i, field := range f.fields {
		entries[i] = Entry{Label: field.Label, Value: read(field.Value)}
	}
	return entries
}

func read(src ValueSource) string {
	if src == nil {
		return ""
	}
	return src()
}
