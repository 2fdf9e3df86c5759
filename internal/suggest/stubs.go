package suggest

import (
	"fmt"
	"strings"

	"github.com/toyz/quicktest/internal/models"
)

const (
	voidAssertCode  = "// TODO: Verify the expected side effects"
	throwsActCode   = "// Invoked inside the assertion below"
	unboundCallCode = "/* TODO: invoke the member under test */"
	integrationMark = "Integration"
)

// LeadingToken returns the part of a test name before the first underscore,
// without a trailing "Integration": GetIntegration_WhenX_Y becomes Get.
func LeadingToken(testName string) string {
	token, _, _ := strings.Cut(testName, "_")
	if trimmed := strings.TrimSuffix(token, integrationMark); trimmed != "" {
		return trimmed
	}
	return token
}

// BindMethod finds the method a test name exercises. An exact match on the
// leading token wins; otherwise the first method whose name starts with it.
func BindMethod(testName string, methods []models.Method) (models.Method, bool) {
	token := LeadingToken(testName)
	if token == "" {
		return models.Method{}, false
	}
	for _, m := range methods {
		if m.Name == token {
			return m, true
		}
	}
	for _, m := range methods {
		if strings.HasPrefix(m.Name, token) {
			return m, true
		}
	}
	return models.Method{}, false
}

// BuildStub creates the arrange/act/assert body for testName. Names that do
// not bind to a method get placeholder bodies, keeping the exception form
// when the name expects a throw.
func BuildStub(testName string, methods []models.Method) models.TestMethodStub {
	method, ok := BindMethod(testName, methods)
	if !ok {
		stub := models.NewPlaceholderStub(testName)
		if expectsThrow(testName) {
			stub.ActCode = throwsActCode
			stub.AssertCode = fmt.Sprintf("Assert.ThrowsException<%s>(() => { %s });", ExceptionFor(testName), unboundCallCode)
		}
		return stub
	}

	stub := models.TestMethodStub{
		Name:        testName,
		ArrangeCode: arrangeCode(method),
		IsAsync:     method.IsAsync,
	}

	call := invocation(method)
	await := ""
	if method.IsAsync {
		await = "await "
	}

	if expectsThrow(testName) {
		exception := ExceptionFor(testName)
		stub.ActCode = throwsActCode
		if method.IsAsync {
			stub.AssertCode = fmt.Sprintf("await Assert.ThrowsExceptionAsync<%s>(async () => await %s);", exception, call)
		} else {
			stub.AssertCode = fmt.Sprintf("Assert.ThrowsException<%s>(() => %s);", exception, call)
		}
		return stub
	}

	if method.IsVoid() {
		stub.ActCode = await + call + ";"
		stub.AssertCode = voidAssertCode
	} else {
		stub.ActCode = "var result = " + await + call + ";"
		stub.AssertCode = "Assert.IsNotNull(result);"
	}
	return stub
}

func expectsThrow(testName string) bool {
	return strings.Contains(testName, "Throws")
}

// BuildStubs creates one stub per name, preserving order
func BuildStubs(testNames []string, methods []models.Method) []models.TestMethodStub {
	stubs := make([]models.TestMethodStub, 0, len(testNames))
	for _, name := range testNames {
		stubs = append(stubs, BuildStub(name, methods))
	}
	return stubs
}

// arrangeCode declares one typed local per argument; out parameters are
// declared at the call site instead.
func arrangeCode(method models.Method) string {
	var lines []string
	for _, p := range method.ParameterList {
		if p.IsOut {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s = %s;", p.Type, p.Name, MeaningfulLiteral(p.Type, p.Name)))
	}
	if len(lines) == 0 {
		return models.DefaultArrangeCode
	}
	return strings.Join(lines, "\n")
}

// invocation renders _sut.Method(args) with out and ref annotations
func invocation(method models.Method) string {
	args := make([]string, 0, len(method.ParameterList))
	for _, p := range method.ParameterList {
		switch {
		case p.IsOut:
			args = append(args, "out var "+p.Name)
		case p.IsRef:
			args = append(args, "ref "+p.Name)
		default:
			args = append(args, p.Name)
		}
	}
	return fmt.Sprintf("_sut.%s(%s)", method.Name, strings.Join(args, ", "))
}
