package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shapecast/diagnostic"
)

func TestNoticeString(t *testing.T) {
	t.Parallel()

	n := diagnostic.Notice{
		Severity:  diagnostic.SeverityWarning,
		Code:      diagnostic.CodeDynamicAssignUnsupported,
		Message:   "dropping it",
		TypePair:  "map[string]interface {} -> store.Product",
		FieldPath: "Vendor",
	}

	assert.Equal(t,
		"[map[string]interface {} -> store.Product] Vendor: [dynamic-assign-unsupported] dropping it",
		n.String())

	assert.Equal(t, "bare message", diagnostic.Notice{Message: "bare message"}.String())
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "warning", diagnostic.SeverityWarning.String())
	assert.Equal(t, "unknown", diagnostic.Severity(42).String())
}

func TestDiagnosticsAggregation(t *testing.T) {
	t.Parallel()

	var d diagnostic.Diagnostics
	d.AddInfo("code-a", "msg", "", "")
	d.AddWarning("code-b", "msg", "", "Field")

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
	assert.True(t, d.HasCode("code-b"))
	assert.False(t, d.HasCode("code-z"))

	var other diagnostic.Diagnostics
	other.AddError("code-c", "boom", "a -> b", "X")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.ErrorContains(t, d.Error(), "[code-c] boom")
}
