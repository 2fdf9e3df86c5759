package extractor

import "github.com/toyz/quicktest/internal/models"

type namingRule struct {
	prefixes []string
	suffixes []string
	// nonVoid is appended when the method returns a value
	nonVoid string
}

// namingRules are evaluated in order; the first matching prefix wins.
var namingRules = []namingRule{
	{
		prefixes: []string{"Get", "Find", "Retrieve"},
		suffixes: []string{"_WhenValidInput_ReturnsExpectedResult", "_WhenInvalidInput_ThrowsArgumentException"},
		nonVoid:  "_WhenNotFound_ReturnsNull",
	},
	{
		prefixes: []string{"Validate", "Is", "Can", "Has"},
		suffixes: []string{"_WhenValid_ReturnsTrue", "_WhenInvalid_ReturnsFalse", "_WhenNull_ThrowsArgumentException"},
	},
	{
		prefixes: []string{"Create", "Update", "Save"},
		suffixes: []string{"_WhenValidInput_Succeeds", "_WhenInvalidInput_ThrowsValidationException"},
		nonVoid:  "_WhenValidInput_ReturnsCreatedEntity",
	},
	{
		prefixes: []string{"Delete", "Remove"},
		suffixes: []string{"_WhenExists_Succeeds", "_WhenNotFound_ThrowsNotFoundException"},
	},
	{
		prefixes: []string{"Process", "Handle", "Execute"},
		suffixes: []string{"_WhenValidInput_CompletesSuccessfully", "_WhenOperationFails_ThrowsInvalidOperationException"},
	},
}

var fallbackRule = namingRule{
	suffixes: []string{"_WhenCalled_ExecutesSuccessfully"},
	nonVoid:  "_WhenCalled_ReturnsExpectedResult",
}

// SuggestTestNames returns canonical test names for a method
func SuggestTestNames(method models.Method) []string {
	rule := fallbackRule
	for _, candidate := range namingRules {
		if method.HasPrefix(candidate.prefixes...) {
			rule = candidate
			break
		}
	}

	names := make([]string, 0, len(rule.suffixes)+1)
	for _, suffix := range rule.suffixes {
		names = append(names, method.Name+suffix)
	}
	if rule.nonVoid != "" && !method.IsVoid() {
		names = append(names, method.Name+rule.nonVoid)
	}
	return names
}
