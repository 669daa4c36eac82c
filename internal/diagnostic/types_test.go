package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddError("empty_enum", "no variants", "Color", "")
	d.AddError("unknown_rename_rule", "bad rule", "Color", "", "snake_case")
	d.AddWarning("unreachable_variant", "never produced", "Color", "Hidden")

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	err := d.Error()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "[Color]: [empty_enum] no variants")
	assert.Contains(t, err.Error(), `[Color]: [unknown_rename_rule] bad rule (did you mean "snake_case"?)`)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{"bare", Diagnostic{Message: "msg"}, "msg"},
		{"code", Diagnostic{Code: "c", Message: "msg"}, "[c] msg"},
		{"enum and variant", Diagnostic{Code: "c", Message: "msg", Enum: "E", Variant: "V"}, "[E] V: [c] msg"},
		{"suggestions", Diagnostic{Message: "msg", Suggestions: []string{"a", "b"}}, `msg (did you mean "a" or "b"?)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo("i", "info", "", "")
	b.AddError("e", "error", "", "")
	b.AddWarning("w", "warning", "", "")
	a.Merge(b)

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
	assert.Equal(t, "warning", all[1].Severity.String())
}
