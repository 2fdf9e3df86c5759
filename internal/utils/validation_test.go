package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotEmpty(t *testing.T) {
	assert.NoError(t, NotEmpty("path")("Order.cs"))

	err := NotEmpty("path")("   ")
	assert.Error(t, err)
	assert.Equal(t, "validation error for field 'path': cannot be empty", err.Error())
}

func TestValidationError_WithoutField(t *testing.T) {
	err := ValidationError{Message: "nothing to scaffold"}
	assert.Equal(t, "validation error: nothing to scaffold", err.Error())
}

func TestValidatorChain(t *testing.T) {
	chain := NewValidatorChain(NotEmpty("extension")).Add(HasPrefix("extension", "."))

	tests := []struct {
		value   string
		wantErr bool
	}{
		{".cs", false},
		{"", true},
		{"cs", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := chain.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidGlob(t *testing.T) {
	assert.NoError(t, IsValidGlob("marker")("*.csproj"))
	assert.Error(t, IsValidGlob("marker")("[*.csproj"))
}

func TestPositive(t *testing.T) {
	assert.NoError(t, Positive("concurrency")(4))
	assert.Error(t, Positive("concurrency")(0))
	assert.Error(t, Positive("concurrency")(-2))
}

func TestValidateEach(t *testing.T) {
	v := NewValidatorChain(
		SliceNotEmpty[string]("project_markers"),
		ValidateEach("project_markers", IsValidGlob("marker")),
	)

	assert.NoError(t, v.Validate([]string{"*.csproj", "*.fsproj"}))
	assert.Error(t, v.Validate(nil))

	err := v.Validate([]string{"*.csproj", "["})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "project_markers[1]")
	}
}
