package models

// TestMethodStub is a single generated test method body
type TestMethodStub struct {
	Name        string `json:"name" yaml:"name"`
	ArrangeCode string `json:"arrange_code" yaml:"arrange_code"`
	ActCode     string `json:"act_code" yaml:"act_code"`
	AssertCode  string `json:"assert_code" yaml:"assert_code"`
	IsAsync     bool   `json:"is_async,omitempty" yaml:"is_async,omitempty"`
}

// Placeholder bodies used when a stub cannot be bound to a method
const (
	DefaultArrangeCode = "// TODO: Add arrangement code"
	DefaultActCode     = "// TODO: Add action code"
	DefaultAssertCode  = "Assert.IsTrue(true);"
)

// NewPlaceholderStub creates a stub with placeholder bodies
func NewPlaceholderStub(name string) TestMethodStub {
	return TestMethodStub{
		Name:        name,
		ArrangeCode: DefaultArrangeCode,
		ActCode:     DefaultActCode,
		AssertCode:  DefaultAssertCode,
	}
}

// GeneratedScaffold is the result of a scaffold request
type GeneratedScaffold struct {
	Kind       ScaffoldKind   `json:"kind" yaml:"kind"`
	SourcePath string         `json:"source_path" yaml:"source_path"`
	TargetPath string         `json:"target_path" yaml:"target_path"`
	Content    string         `json:"content" yaml:"content"`
	Context    *SourceContext `json:"-" yaml:"-"`
}
