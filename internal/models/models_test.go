package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInterfaceName(t *testing.T) {
	tests := []struct {
		typeName string
		expected bool
	}{
		{"IOrderRepository", true},
		{"ILogger", true},
		{"IO", true},
		{"Invoice", false},
		{"I", false},
		{"int", false},
		{"iService", false},
		{"string", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsInterfaceName(tt.typeName))
			assert.Equal(t, tt.expected, NewDependency(tt.typeName, "x", "null").NeedsSubstitute)
		})
	}
}

func TestClassKind_String(t *testing.T) {
	assert.Equal(t, "Repository", ClassKindRepository.String())
	assert.Equal(t, "Handler", ClassKindHandler.String())
	assert.Equal(t, "Unknown", ClassKindUnknown.String())
	assert.Equal(t, "Unknown", ClassKind(99).String())

	text, err := ClassKindController.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Controller", string(text))
}

func TestParseScaffoldKind(t *testing.T) {
	tests := []struct {
		input    string
		expected ScaffoldKind
		ok       bool
	}{
		{"Unit.Tests", ScaffoldUnit, true},
		{"unit", ScaffoldUnit, true},
		{"Integration.Tests", ScaffoldIntegration, true},
		{" INTEGRATION ", ScaffoldIntegration, true},
		{"Original", ScaffoldOriginal, true},
		{"e2e", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, ok := ParseScaffoldKind(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestScaffoldKind_PathSuffix(t *testing.T) {
	assert.Equal(t, "Unit.Tests", ScaffoldUnit.PathSuffix())
	assert.Equal(t, "Integration.Tests", ScaffoldIntegration.PathSuffix())
	assert.Equal(t, "", ScaffoldOriginal.PathSuffix())
	assert.True(t, ScaffoldUnit.IsTest())
	assert.False(t, ScaffoldOriginal.IsTest())
}

func TestMethodHelpers(t *testing.T) {
	m := Method{Name: "GetOrder", ReturnType: "Order"}
	assert.False(t, m.IsVoid())
	assert.True(t, m.HasPrefix("Find", "Get"))
	assert.False(t, m.HasPrefix("Delete"))

	assert.True(t, Method{ReturnType: "void"}.IsVoid())
	assert.True(t, Method{}.IsVoid())

	ctx := &SourceContext{Methods: []Method{m}}
	found, ok := ctx.FindMethod("GetOrder")
	assert.True(t, ok)
	assert.Equal(t, "Order", found.ReturnType)
	_, ok = ctx.FindMethod("Missing")
	assert.False(t, ok)
}

func TestBodyPatterns_Any(t *testing.T) {
	assert.False(t, BodyPatterns{}.Any())
	assert.True(t, BodyPatterns{UsesFileOperations: true}.Any())
}
