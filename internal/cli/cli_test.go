package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderServiceSource = `using Shop.Domain;

namespace Shop.Services
{
    public class OrderService
    {
        public OrderService(IOrderRepository repository)
        {
        }

        public Order GetOrder(int id)
        {
            return _repository.GetById(id);
        }
    }
}
`

const orderSource = `namespace Shop.Models
{
    public class Order
    {
        public int Id { get; set; }
    }
}
`

type solution struct {
	root        string
	service     string
	unitTarget  string
	integration string
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newSolution(t *testing.T) solution {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Shop.sln"), "")
	writeFile(t, filepath.Join(root, "Shop", "Shop.csproj"), "<Project />")
	writeFile(t, filepath.Join(root, "Shop.Unit.Tests", "Shop.Unit.Tests.csproj"), "<Project />")
	writeFile(t, filepath.Join(root, "Shop.Integration.Tests", "Shop.Integration.Tests.csproj"), "<Project />")
	writeFile(t, filepath.Join(root, "Shop", "Services", "OrderService.cs"), orderServiceSource)

	return solution{
		root:        root,
		service:     filepath.Join(root, "Shop", "Services", "OrderService.cs"),
		unitTarget:  filepath.Join(root, "Shop.Unit.Tests", "Services", "OrderServiceTests.cs"),
		integration: filepath.Join(root, "Shop.Integration.Tests", "Services", "OrderServiceTests.cs"),
	}
}

func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	code := NewApp(&stdout, &stderr).Run(args)
	return stdout.String(), stderr.String(), code
}

func TestMapCommand(t *testing.T) {
	s := newSolution(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"unit with base", []string{"map", s.service, "--kind", "Unit.Tests", "--base", s.root}, s.unitTarget},
		{"integration short form", []string{"map", s.service, "-k", "integration", "--base", s.root}, s.integration},
		{"solution marker discovery", []string{"map", s.service, "--kind", "unit"}, s.unitTarget},
		{"back to production", []string{"map", s.unitTarget, "--kind", "Original"}, s.service},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(t, tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.expected+"\n", stdout)
		})
	}
}

func TestMapCommand_Errors(t *testing.T) {
	s := newSolution(t)
	outside := filepath.Join(t.TempDir(), "Loose.cs")

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"unmappable", []string{"map", outside, "--kind", "unit", "--base", s.root}, "is not inside a project folder"},
		{"missing kind", []string{"map", s.service}, "required argument 'kind' is missing"},
		{"unknown kind", []string{"map", s.service, "--kind", "Smoke"}, "use one of: Unit.Tests, Integration.Tests, Original"},
		{"missing argument", []string{"map", "--kind", "unit"}, "accepts 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.contains)
		})
	}
}

func TestGenerateCommand(t *testing.T) {
	s := newSolution(t)

	stdout, stderr, code := runCLI(t, "generate", s.service, "--kind", "Unit.Tests")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "namespace Shop.Unit.Tests.Services")
	assert.Contains(t, stdout, "public class OrderServiceTests")
	assert.Contains(t, stdout, "_repository = Substitute.For<IOrderRepository>();")
	assert.NoFileExists(t, s.unitTarget)

	stdout, stderr, code = runCLI(t, "generate", s.service, "--kind", "Unit.Tests", "--write")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, s.unitTarget+"\n", stdout)
	assert.Contains(t, stderr, "Created "+s.unitTarget)
	require.FileExists(t, s.unitTarget)

	_, stderr, code = runCLI(t, "generate", s.service, "--kind", "Unit.Tests", "--write")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "already exists")
	assert.Contains(t, stderr, "pass --force to overwrite it")

	_, stderr, code = runCLI(t, "generate", s.service, "--kind", "Unit.Tests", "--write", "--force")
	assert.Equal(t, 0, code, stderr)
}

func TestGenerateCommand_ExplicitTarget(t *testing.T) {
	s := newSolution(t)
	target := filepath.Join(s.root, "Shop.Unit.Tests", "Custom", "OrderServiceSpec.cs")

	stdout, stderr, code := runCLI(t, "generate", s.service, "--kind", "unit", "--target", target, "--quiet")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "namespace Shop.Unit.Tests.Custom")
	assert.Empty(t, stderr)
}

func TestGenerateCommand_Original(t *testing.T) {
	s := newSolution(t)
	writeFile(t, s.unitTarget, `using Microsoft.VisualStudio.TestTools.UnitTesting;

namespace Shop.Unit.Tests.Services
{
    [TestClass]
    public class OrderServiceTests
    {
        [TestMethod]
        public void Ship_WhenPaid_Dispatches()
        {
        }
    }
}
`)

	stdout, stderr, code := runCLI(t, "generate", s.unitTarget, "--kind", "Original")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "namespace Shop.Services")
	assert.Contains(t, stdout, "public class OrderService")
	assert.Contains(t, stdout, "public void Ship()")
}

func TestNavigateCommand(t *testing.T) {
	s := newSolution(t)

	_, stderr, code := runCLI(t, "navigate", s.service, "--kind", "unit")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "pass --create to generate it")

	stdout, stderr, code := runCLI(t, "navigate", s.service, "--kind", "unit", "--create")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, s.unitTarget+"\n", stdout)
	require.FileExists(t, s.unitTarget)

	stdout, _, code = runCLI(t, "navigate", s.service, "--kind", "unit")
	assert.Equal(t, 0, code)
	assert.Equal(t, s.unitTarget+"\n", stdout)
}

func TestNavigateCommand_SearchFallback(t *testing.T) {
	s := newSolution(t)
	moved := filepath.Join(s.root, "Shop.Integration.Tests", "Legacy", "OrderServiceTests.cs")
	writeFile(t, moved, "// moved")
	writeFile(t, filepath.Join(s.root, "Shop.Integration.Tests", "bin", "OrderServiceTests.cs"), "// build output")

	stdout, stderr, code := runCLI(t, "navigate", s.service, "--kind", "Integration.Tests")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, moved+"\n", stdout)
	assert.Contains(t, stderr, "[WARN]")
	assert.Contains(t, stderr, "does not exist, found "+moved)
}

func TestInspectCommand(t *testing.T) {
	s := newSolution(t)

	stdout, stderr, code := runCLI(t, "inspect", s.service)
	require.Equal(t, 0, code, stderr)

	for _, fragment := range []string{
		"namespace: Shop.Services",
		"class_name: OrderService",
		"class_kind: Service",
		"interface_type: IOrderRepository",
		"needs_substitute: true",
		"name: GetOrder",
		"return_type: Order",
	} {
		assert.Contains(t, stdout, fragment)
	}

	stdout, _, code = runCLI(t, "inspect", s.service, "--target", s.unitTarget)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "namespace: Shop.Unit.Tests.Services")
}

func TestDiffCommand(t *testing.T) {
	s := newSolution(t)

	_, stderr, code := runCLI(t, "diff", s.service, "--kind", "unit")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "run generate --write to create it first")

	_, stderr, code = runCLI(t, "generate", s.service, "--kind", "unit", "--write")
	require.Equal(t, 0, code, stderr)

	stdout, stderr, code := runCLI(t, "diff", s.service, "--kind", "unit")
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "matches a fresh Unit.Tests scaffold")

	existing, err := os.ReadFile(s.unitTarget)
	require.NoError(t, err)
	edited := strings.Replace(string(existing), "[TestClass]", "[TestClass]\n    // hand written", 1)
	require.NoError(t, os.WriteFile(s.unitTarget, []byte(edited), 0644))

	stdout, stderr, code = runCLI(t, "diff", s.service, "--kind", "unit")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "--- "+s.unitTarget)
	assert.Contains(t, stdout, "-    // hand written\n")
	assert.Contains(t, stdout, " public class OrderServiceTests")
}

func TestBatchCommand(t *testing.T) {
	s := newSolution(t)
	writeFile(t, filepath.Join(s.root, "Shop", "Models", "Order.cs"), orderSource)
	writeFile(t, filepath.Join(s.root, "Shop", "obj", "Generated.cs"), orderSource)
	writeFile(t, filepath.Join(s.root, "Shop", "README.md"), "# Shop")
	writeFile(t, s.unitTarget, "// existing")

	orderTarget := filepath.Join(s.root, "Shop.Unit.Tests", "Models", "OrderTests.cs")

	stdout, stderr, code := runCLI(t, "batch", s.root, "--kind", "unit")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, orderTarget+"\n", stdout)
	assert.NoFileExists(t, orderTarget)

	stdout, stderr, code = runCLI(t, "batch", s.root, "--kind", "unit", "--write")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, orderTarget+"\n", stdout)
	assert.Contains(t, stderr, "Created: 1")
	assert.Contains(t, stderr, "Failed: 0")
	require.FileExists(t, orderTarget)

	content, err := os.ReadFile(s.unitTarget)
	require.NoError(t, err)
	assert.Equal(t, "// existing", string(content))

	stdout, stderr, code = runCLI(t, "batch", s.root, "--kind", "unit", "--write")
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "already has a Unit.Tests counterpart")
}

func TestTemplatesCommand(t *testing.T) {
	stdout, stderr, code := runCLI(t, "templates")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "IntegrationTest.template")
	assert.Contains(t, stdout, "Original.template")
	assert.Contains(t, stdout, "UnitTest.template")
}

func TestConfigErrorsAreReported(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "quicktest.yaml")
	writeFile(t, cfgPath, "log_level: loud\n")

	_, stderr, code := runCLI(t, "templates", "--config", cfgPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "ConfigurationError")
	assert.Contains(t, stderr, "log_level")
}

func TestVerboseAndQuietAreExclusive(t *testing.T) {
	_, stderr, code := runCLI(t, "templates", "--verbose", "--quiet")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "none of the others can be")
}

func TestLineDiff(t *testing.T) {
	tests := []struct {
		name     string
		before   string
		after    string
		expected string
		changed  bool
	}{
		{"identical", "a\nb\n", "a\nb\n", " a\n b\n", false},
		{"added line", "a\nc\n", "a\nb\nc\n", " a\n+b\n c\n", true},
		{"removed line", "a\nb\nc\n", "a\nc\n", " a\n-b\n c\n", true},
		{"no trailing newline", "a", "b", "-a\n+b\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, changed := lineDiff(tt.before, tt.after)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.changed, changed)
		})
	}
}
