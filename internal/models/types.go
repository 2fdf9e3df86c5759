package models

import "strings"

// ClassKind represents the inferred role of an analyzed class
type ClassKind int

const (
	ClassKindUnknown ClassKind = iota
	ClassKindController
	ClassKindRepository
	ClassKindService
	ClassKindValidator
	ClassKindFactory
	ClassKindProvider
	ClassKindManager
	ClassKindHandler
)

// String returns the string representation of the class kind
func (k ClassKind) String() string {
	switch k {
	case ClassKindController:
		return "Controller"
	case ClassKindRepository:
		return "Repository"
	case ClassKindService:
		return "Service"
	case ClassKindValidator:
		return "Validator"
	case ClassKindFactory:
		return "Factory"
	case ClassKindProvider:
		return "Provider"
	case ClassKindManager:
		return "Manager"
	case ClassKindHandler:
		return "Handler"
	default:
		return "Unknown"
	}
}

// MarshalText lets class kinds serialize by name in JSON and YAML output
func (k ClassKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ScaffoldKind identifies which file variant to generate
type ScaffoldKind string

const (
	ScaffoldUnit        ScaffoldKind = "Unit.Tests"
	ScaffoldIntegration ScaffoldKind = "Integration.Tests"
	ScaffoldOriginal    ScaffoldKind = "Original"
)

// AllScaffoldKinds lists the supported kinds in their canonical order
var AllScaffoldKinds = []ScaffoldKind{ScaffoldUnit, ScaffoldIntegration, ScaffoldOriginal}

// ParseScaffoldKind accepts the canonical tokens plus the short forms
// unit, integration and original (case-insensitive).
func ParseScaffoldKind(value string) (ScaffoldKind, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "unit.tests", "unit":
		return ScaffoldUnit, true
	case "integration.tests", "integration":
		return ScaffoldIntegration, true
	case "original":
		return ScaffoldOriginal, true
	}
	return "", false
}

// PathSuffix returns the project folder suffix for the kind; Original has none
func (k ScaffoldKind) PathSuffix() string {
	if k == ScaffoldOriginal {
		return ""
	}
	return string(k)
}

// IsTest reports whether the kind produces a test file
func (k ScaffoldKind) IsTest() bool {
	return k == ScaffoldUnit || k == ScaffoldIntegration
}
