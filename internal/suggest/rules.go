package suggest

import (
	"strings"

	"github.com/toyz/quicktest/internal/models"
)

// classRule lists the test names generated for one class kind
type classRule struct {
	kind        models.ClassKind
	unit        []string
	integration []string
}

// classificationRules are checked in order; the first rule for a kind wins.
var classificationRules = []classRule{
	{
		kind: models.ClassKindRepository,
		unit: []string{
			"Get_WhenValidId_ReturnsEntity",
			"Get_WhenInvalidId_ReturnsNull",
			"Create_WhenValidEntity_Succeeds",
			"Create_WhenNullEntity_ThrowsArgumentException",
			"Update_WhenValidEntity_Succeeds",
			"Update_WhenEntityMissing_ThrowsNotFoundException",
			"Delete_WhenValidId_Succeeds",
			"Delete_WhenInvalidId_ThrowsNotFoundException",
		},
		integration: []string{
			"GetIntegration_WhenValidId_ReturnsEntity",
			"CreateIntegration_WhenValidEntity_Succeeds",
			"UpdateIntegration_WhenValidEntity_Succeeds",
			"DeleteIntegration_WhenValidId_Succeeds",
			"CreateIntegration_WhenTransactionRolledBack_DoesNotPersist",
		},
	},
	{
		kind:        models.ClassKindValidator,
		unit:        []string{"Validate_WhenValid_ReturnsTrue", "Validate_WhenInvalid_ReturnsFalse"},
		integration: []string{"ValidateIntegration_WhenPersistedStateValid_ReturnsTrue"},
	},
	{
		kind: models.ClassKindService,
		unit: []string{
			"Constructor_WhenDependenciesProvided_CreatesInstance",
			"Process_WhenDependencyFails_ThrowsInvalidOperationException",
		},
		integration: []string{
			"ProcessIntegration_WhenValidInput_Succeeds",
			"HandleIntegration_WhenValidRequest_ReturnsExpectedResponse",
		},
	},
	{
		kind: models.ClassKindController,
		unit: []string{
			"Action_WhenValidRequest_ReturnsOk",
			"Action_WhenInvalidModel_ReturnsBadRequest",
			"Action_WhenResourceMissing_ReturnsNotFound",
		},
		integration: []string{
			"EndpointIntegration_WhenValidRequest_ReturnsSuccessStatus",
			"EndpointIntegration_WhenUnauthenticated_ReturnsUnauthorized",
		},
	},
	{
		kind:        models.ClassKindFactory,
		unit:        []string{"Create_WhenValidParameters_ReturnsInstance", "Create_WhenInvalidParameters_ThrowsArgumentException"},
		integration: []string{"CreateIntegration_WhenDependenciesResolved_ReturnsInstance"},
	},
	{
		kind:        models.ClassKindProvider,
		unit:        []string{"Get_WhenConfigured_ReturnsValue", "Get_WhenNotConfigured_ReturnsDefault"},
		integration: []string{"GetIntegration_WhenBackingStoreAvailable_ReturnsValue"},
	},
	{
		kind:        models.ClassKindManager,
		unit:        []string{"Execute_WhenValidState_Succeeds", "Execute_WhenInvalidState_ThrowsInvalidOperationException"},
		integration: []string{"ExecuteIntegration_WhenWorkflowCompletes_PersistsState"},
	},
	{
		kind:        models.ClassKindHandler,
		unit:        []string{"Handle_WhenValidRequest_ReturnsExpectedResponse", "Handle_WhenInvalidRequest_ThrowsValidationException"},
		integration: []string{"HandleIntegration_WhenMessageReceived_ProcessesEndToEnd"},
	},
}

// classificationNames returns the names for kind, nil for Unknown
func classificationNames(kind models.ClassKind, integration bool) []string {
	for _, rule := range classificationRules {
		if rule.kind != kind {
			continue
		}
		if integration {
			return rule.integration
		}
		return rule.unit
	}
	return nil
}

// Integration suffixes keyed off body pattern flags
const (
	endToEndSuffix         = "_WhenInvokedEndToEnd_CompletesSuccessfully"
	validationSuffix       = "_WhenInputInvalid_ThrowsValidationException"
	externalServiceSuffix  = "_WhenExternalServiceUnavailable_HandlesFailure"
	fileSystemSuffix       = "_WhenFileSystemAccessed_HandlesFilesCorrectly"
	databaseFallbackSuffix = "_WhenCalled_InteractsWithDatabase"
	basicFunctionality     = "_BasicFunctionality_Works"
)

var databaseRules = []struct {
	prefixes []string
	suffix   string
}{
	{[]string{"Get", "Find", "Retrieve"}, "_WhenDataExists_ReturnsPersistedData"},
	{[]string{"Create", "Update", "Save"}, "_WhenCalled_PersistsChanges"},
	{[]string{"Delete", "Remove"}, "_WhenCalled_RemovesPersistedData"},
}

func databaseSuffix(method models.Method) string {
	for _, rule := range databaseRules {
		if method.HasPrefix(rule.prefixes...) {
			return rule.suffix
		}
	}
	return databaseFallbackSuffix
}

// Exception kinds chosen by substring of a Throws test name, in order.
var exceptionRules = []struct {
	token     string
	exception string
}{
	{"NotFound", "KeyNotFoundException"},
	{"Validation", "ValidationException"},
	{"Argument", "ArgumentException"},
	{"InvalidOperation", "InvalidOperationException"},
}

// ExceptionFor returns the exception type asserted by a Throws test name
func ExceptionFor(testName string) string {
	for _, rule := range exceptionRules {
		if strings.Contains(testName, rule.token) {
			return rule.exception
		}
	}
	return "Exception"
}
