package models

import (
	"strings"
	"unicode"
)

// SourceContext is the structural snapshot extracted from one source file
type SourceContext struct {
	Namespace       string       `json:"namespace" yaml:"namespace"`
	ClassName       string       `json:"class_name" yaml:"class_name"`
	Imports         []string     `json:"imports" yaml:"imports"`
	ClassKind       ClassKind    `json:"class_kind" yaml:"class_kind"`
	Dependencies    []Dependency `json:"dependencies" yaml:"dependencies"`
	Methods         []Method     `json:"methods" yaml:"methods"`
	Properties      []Property   `json:"properties" yaml:"properties"`
	ClassAttributes []string     `json:"class_attributes,omitempty" yaml:"class_attributes,omitempty"`
}

// Dependency represents a constructor parameter of the analyzed class
type Dependency struct {
	InterfaceType   string `json:"interface_type" yaml:"interface_type"`
	Name            string `json:"name" yaml:"name"`
	NeedsSubstitute bool   `json:"needs_substitute" yaml:"needs_substitute"`
	DefaultValue    string `json:"default_value" yaml:"default_value"`
}

// NewDependency builds a dependency, deriving NeedsSubstitute from the type name
func NewDependency(typeName, name, defaultValue string) Dependency {
	return Dependency{
		InterfaceType:   typeName,
		Name:            name,
		NeedsSubstitute: IsInterfaceName(typeName),
		DefaultValue:    defaultValue,
	}
}

// IsInterfaceName reports whether a type follows the I-prefixed interface
// naming convention: an upper-case I followed by another upper-case letter.
func IsInterfaceName(typeName string) bool {
	runes := []rune(typeName)
	return len(runes) >= 2 && runes[0] == 'I' && unicode.IsUpper(runes[1])
}

// Method represents a matched public or internal method signature
type Method struct {
	Name               string       `json:"name" yaml:"name"`
	ReturnType         string       `json:"return_type" yaml:"return_type"`
	Parameters         string       `json:"parameters" yaml:"parameters"`
	ParameterList      []Parameter  `json:"parameter_list" yaml:"parameter_list"`
	IsAsync            bool         `json:"is_async" yaml:"is_async"`
	Attributes         []string     `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	SuggestedTestNames []string     `json:"suggested_test_names" yaml:"suggested_test_names"`
	BodyPatterns       BodyPatterns `json:"body_patterns" yaml:"body_patterns"`
}

// IsVoid reports whether the normalized return type is void
func (m Method) IsVoid() bool {
	return m.ReturnType == "" || m.ReturnType == "void"
}

// HasPrefix reports whether the method name starts with any of the given prefixes
func (m Method) HasPrefix(prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(m.Name, prefix) {
			return true
		}
	}
	return false
}

// Parameter represents a single method parameter
type Parameter struct {
	Type     string `json:"type" yaml:"type"`
	Name     string `json:"name" yaml:"name"`
	IsOut    bool   `json:"is_out,omitempty" yaml:"is_out,omitempty"`
	IsRef    bool   `json:"is_ref,omitempty" yaml:"is_ref,omitempty"`
	IsParams bool   `json:"is_params,omitempty" yaml:"is_params,omitempty"`
}

// BodyPatterns holds the signals detected inside a method body
type BodyPatterns struct {
	UsesDatabaseOperations  bool `json:"uses_database_operations" yaml:"uses_database_operations"`
	PerformsValidation      bool `json:"performs_validation" yaml:"performs_validation"`
	HasExternalDependencies bool `json:"has_external_dependencies" yaml:"has_external_dependencies"`
	UsesFileOperations      bool `json:"uses_file_operations" yaml:"uses_file_operations"`
}

// Any reports whether at least one flag is set
func (b BodyPatterns) Any() bool {
	return b.UsesDatabaseOperations || b.PerformsValidation || b.HasExternalDependencies || b.UsesFileOperations
}

// Property represents a public property declaration
type Property struct {
	Name         string `json:"name" yaml:"name"`
	Type         string `json:"type" yaml:"type"`
	IsCollection bool   `json:"is_collection" yaml:"is_collection"`
}

// FindMethod returns the first method with the given name
func (c *SourceContext) FindMethod(name string) (Method, bool) {
	for _, method := range c.Methods {
		if method.Name == name {
			return method, true
		}
	}
	return Method{}, false
}
