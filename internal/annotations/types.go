package annotations

import "strings"

// Attribute is one attribute inside a bracketed section, e.g. HttpGet("{id}")
type Attribute struct {
	Name      string     // possibly qualified name as written
	Target    string     // section target such as "return" or "assembly", usually empty
	Arguments []Argument // positional and named arguments in source order
}

// Argument is a single attribute argument; Name is empty for positional ones
type Argument struct {
	Name  string
	Value string
}

// ShortName returns the attribute name without namespace qualification or the
// conventional Attribute suffix: System.ObsoleteAttribute becomes Obsolete.
func (a Attribute) ShortName() string {
	name := a.Name
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if trimmed := strings.TrimSuffix(name, "Attribute"); trimmed != "" {
		name = trimmed
	}
	return name
}

// Positional returns the positional argument at index, unquoted
func (a Attribute) Positional(index int) (string, bool) {
	i := 0
	for _, arg := range a.Arguments {
		if arg.Name != "" {
			continue
		}
		if i == index {
			return Unquote(arg.Value), true
		}
		i++
	}
	return "", false
}

// Named returns the value of a named argument, unquoted
func (a Attribute) Named(name string) (string, bool) {
	for _, arg := range a.Arguments {
		if arg.Name == name {
			return Unquote(arg.Value), true
		}
	}
	return "", false
}

// Unquote strips regular or verbatim string quotes from an argument value
func Unquote(value string) string {
	value = strings.TrimPrefix(value, "@")
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}

// HTTP verb attributes recognized on controller actions, in lookup order.
var httpVerbAttributes = []struct {
	attribute string
	verb      string
}{
	{"HttpGet", "Get"},
	{"HttpPost", "Post"},
	{"HttpPut", "Put"},
	{"HttpDelete", "Delete"},
	{"HttpPatch", "Patch"},
	{"HttpHead", "Head"},
	{"HttpOptions", "Options"},
}

// HTTPEndpoint describes the verb and route template declared on an action
type HTTPEndpoint struct {
	Verb  string
	Route string
}

// FindHTTPEndpoint returns the first HTTP verb attribute among attrs
func FindHTTPEndpoint(attrs []Attribute) (HTTPEndpoint, bool) {
	for _, attr := range attrs {
		short := attr.ShortName()
		for _, candidate := range httpVerbAttributes {
			if short != candidate.attribute {
				continue
			}
			endpoint := HTTPEndpoint{Verb: candidate.verb}
			if route, ok := attr.Positional(0); ok {
				endpoint.Route = route
			} else if route, ok := attr.Named("template"); ok {
				endpoint.Route = route
			}
			return endpoint, true
		}
	}
	return HTTPEndpoint{}, false
}

// HasAttribute reports whether attrs contain an attribute with the short name
func HasAttribute(attrs []Attribute, shortName string) bool {
	for _, attr := range attrs {
		if attr.ShortName() == shortName {
			return true
		}
	}
	return false
}
