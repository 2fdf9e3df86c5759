package extractor

import (
	"regexp"
	"strings"

	"github.com/toyz/quicktest/internal/models"
)

var (
	databaseTokens = []string{
		"SqlConnection", "DbConnection", "DbContext", "ExecuteQuery", "ExecuteNonQuery",
		"ExecuteScalar", "ExecuteReader", "SaveChanges", "_context.", "_repository.",
		"Repository.", "QueryAsync", "FromSql", "connection.",
	}
	branchTokens     = []string{"if (", "if("}
	validationTokens = []string{"throw", "return false", "return null"}
	externalTokens   = []string{
		"HttpClient", "_httpClient", "WebClient", "RestClient", "HttpRequestMessage",
		"GetAsync(", "PostAsync(", "PutAsync(", "SendAsync(", "ApiClient",
	}
	fileTokens = []string{"File.", "Directory.", "Stream", "FileInfo", "Path.Combine"}
)

// MethodBody returns the text of the first block following name(...).
// The match is non-greedy, so a nested block ends it at the first closing
// brace. Expression bodies (=> expr;) are returned as well.
func MethodBody(content, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	pattern, err := regexp.Compile(`(?s)\b` + regexp.QuoteMeta(name) + `\s*\([^)]*\)[^{;]*?(?:\{(.*?)\}|=>([^;]*);)`)
	if err != nil {
		return "", false
	}

	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	if match[1] != "" {
		return match[1], true
	}
	return match[2], true
}

// DetectBodyPatterns inspects the body of the named method for database,
// validation, external call and file system signatures.
func DetectBodyPatterns(content, methodName string) models.BodyPatterns {
	body, ok := MethodBody(content, methodName)
	if !ok {
		return models.BodyPatterns{}
	}

	return models.BodyPatterns{
		UsesDatabaseOperations:  containsAny(body, databaseTokens...),
		PerformsValidation:      containsAny(body, branchTokens...) && containsAny(body, validationTokens...),
		HasExternalDependencies: containsAny(body, externalTokens...),
		UsesFileOperations:      containsAny(body, fileTokens...),
	}
}

func containsAny(s string, tokens ...string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
