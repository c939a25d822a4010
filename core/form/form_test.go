package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedback/core/form"
)

func TestModel_AddFieldPreservesOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		labels []string
	}{
		{name: "none", labels: []string{}},
		{name: "single", labels: []string{"Name"}},
		{name: "several", labels: []string{"Name", "Email", "Device"}},
		{name: "duplicates", labels: []string{"Name", "Name", "Email", "Name"}},
		{name: "empty labels", labels: []string{"", "Email", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := &form.Model{}
			for _, l := range tt.labels {
				require.Same(t, m, m.AddField(l))
			}
			if diff := cmp.Diff(tt.labels, m.Labels()); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.labels), m.Len())
		})
	}
}

func TestModel_LabelsIsACopy(t *testing.T) {
	t.Parallel()

	m := form.NewModel("Name", "Email")
	labels := m.Labels()
	labels[0] = "changed"
	assert.Equal(t, []string{"Name", "Email"}, m.Labels())
}

func TestModel_Bind(t *testing.T) {
	t.Parallel()

	m := form.NewModel("Name", "Email")

	_, ok := m.Bind([]form.ValueSource{form.Static("Alice")})
	assert.False(t, ok)

	fields, ok := m.Bind([]form.ValueSource{form.Static("Alice"), form.Static("a@x.com")})
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, "Name", fields[0].Label)
	assert.Equal(t, "a@x.com", fields[1].Value())
}

func TestForm_ReadsValuesLazily(t *testing.T) {
	t.Parallel()

	primary := "first"
	name := "Alice"
	f := form.New(
		func() string { return primary },
		form.Field{Label: "Name", Value: func() string { return name }},
	)

	assert.Equal(t, "first", f.PrimaryValue())
	assert.Equal(t, []form.Entry{{Label: "Name", Value: "Alice"}}, f.Entries())

	primary = "edited"
	name = "Bob"
	assert.Equal(t, "edited", f.PrimaryValue())
	assert.Equal(t, []form.Entry{{Label: "Name", Value: "Bob"}}, f.Entries())
}

func TestForm_FieldsOrderAndIsolation(t *testing.T) {
	t.Parallel()

	fields := []form.Field{
		{Label: "Name", Value: form.Static("Alice")},
		{Label: "Name", Value: form.Static("Bob")},
		{Label: "Email", Value: form.Static("a@x.com")},
	}
	f := form.New(form.Static("Great app"), fields...)
	fields[0].Label = "mutated"

	want := []form.Entry{
		{Label: "Name", Value: "Alice"},
		{Label: "Name", Value: "Bob"},
		{Label: "Email", Value: "a@x.com"},
	}
	assert.Equal(t, want, f.Entries())

	view := f.Fields()
	view[1].Label = "mutated"
	assert.Equal(t, "Name", f.Fields()[1].Label)
}

func TestForm_NilSourcesReadEmpty(t *testing.T) {
	t.Parallel()

	f := form.New(nil, form.Field{Label: "Name"})
	assert.Equal(t, "", f.PrimaryValue())
	assert.Equal(t, []form.Entry{{Label: "Name", Value: ""}}, f.Entries())
}
