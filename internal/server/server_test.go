package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	qterrors "github.com/toyz/quicktest/internal/errors"
	"github.com/toyz/quicktest/internal/extractor"
	"github.com/toyz/quicktest/internal/generator"
	"github.com/toyz/quicktest/internal/metrics"
	"github.com/toyz/quicktest/internal/templates"
)

const orderRepositorySource = `namespace Shop.Repositories
{
    public class OrderRepository
    {
        public OrderRepository(IDbContextFactory factory)
        {
        }

        public Order GetById(int id)
        {
            return null;
        }
    }
}
`

type fixture struct {
	root   string
	source string
	target string
	server *Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		filepath.Join(root, "Shop", "Shop.csproj"):                        "<Project />",
		filepath.Join(root, "Shop.Unit.Tests", "Shop.Unit.Tests.csproj"):  "<Project />",
		filepath.Join(root, "Shop", "Repositories", "OrderRepository.cs"): orderRepositorySource,
	}
	for path, content := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	reg := prometheus.NewRegistry()
	service := generator.NewService(
		extractor.NewExtractor(nil),
		templates.NewRegistry("", nil),
		nil,
		generator.WithRecorder(metrics.New(reg)),
	)

	return &fixture{
		root:   root,
		source: filepath.Join(root, "Shop", "Repositories", "OrderRepository.cs"),
		target: filepath.Join(root, "Shop.Unit.Tests", "Repositories", "OrderRepositoryTests.cs"),
		server: NewServer(nil, service, reg, nil),
	}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == nil {
		reader = strings.NewReader("")
	} else {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.server.Echo().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) HttpError {
	t.Helper()
	var body HttpError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Scaffold(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/scaffold", ScaffoldRequest{
		SourcePath: f.source,
		TargetPath: f.target,
		Kind:       "unit",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScaffoldResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Unit.Tests", string(resp.Kind))
	assert.Equal(t, f.target, resp.TargetPath)
	assert.Contains(t, resp.Content, "public class OrderRepositoryTests")
	assert.Contains(t, resp.Content, "namespace Shop.Unit.Tests.Repositories")

	metricsRec := f.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), `quicktest_scaffolds_total{kind="Unit.Tests",result="success"} 1`)
	assert.Contains(t, metricsRec.Body.String(), "quicktest_scaffold_duration_seconds_bucket")
}

func TestServer_ScaffoldErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		body   interface{}
		status int
		code   string
	}{
		{
			name:   "missing source",
			body:   ScaffoldRequest{TargetPath: f.target, Kind: "Unit.Tests"},
			status: http.StatusBadRequest,
			code:   "PreconditionError",
		},
		{
			name:   "unknown kind",
			body:   ScaffoldRequest{SourcePath: f.source, TargetPath: f.target, Kind: "Load.Tests"},
			status: http.StatusUnprocessableEntity,
			code:   "ConfigurationError",
		},
		{
			name:   "malformed body",
			body:   "not an object",
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/api/v1/scaffold", tt.body)
			assert.Equal(t, tt.status, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, tt.status, body.StatusCode)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestServer_UnknownKindSuggestions(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/scaffold", ScaffoldRequest{
		SourcePath: f.source,
		TargetPath: f.target,
		Kind:       "Smoke",
	})

	body := decodeError(t, rec)
	assert.Equal(t, []string{"use one of: Unit.Tests, Integration.Tests, Original"}, body.Suggestions)
}

func TestServer_Map(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		req      MapRequest
		status   int
		expected string
	}{
		{
			name:     "production to unit tests",
			req:      MapRequest{Path: f.source, BaseDir: f.root, Kind: "Unit.Tests"},
			status:   http.StatusOK,
			expected: f.target,
		},
		{
			name:     "tests back to production",
			req:      MapRequest{Path: f.target, BaseDir: f.root, Kind: "Original"},
			status:   http.StatusOK,
			expected: f.source,
		},
		{
			name:   "outside base dir",
			req:    MapRequest{Path: "/elsewhere/Order.cs", BaseDir: f.root, Kind: "Unit.Tests"},
			status: http.StatusNotFound,
		},
		{
			name:   "missing base dir",
			req:    MapRequest{Path: f.source, Kind: "Unit.Tests"},
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown kind",
			req:    MapRequest{Path: f.source, BaseDir: f.root, Kind: "E2E"},
			status: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/api/v1/map", tt.req)
			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				return
			}

			var resp MapResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp.TargetPath)
		})
	}
}

func TestServer_Inspect(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/inspect", InspectRequest{SourcePath: f.source, TargetPath: f.target})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OrderRepository", body["class_name"])
	assert.Equal(t, "Repository", body["class_kind"])
	assert.Equal(t, "Shop.Unit.Tests.Repositories", body["namespace"])
	assert.Len(t, body["dependencies"], 1)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/nothing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).StatusCode)
}

func TestServer_WithoutGatherer(t *testing.T) {
	s := NewServer(nil, generator.NewService(extractor.NewExtractor(nil), templates.NewRegistry("", nil), nil), nil, nil)

	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code   qterrors.ErrorCode
		status int
	}{
		{qterrors.PreconditionErrorCode, http.StatusBadRequest},
		{qterrors.ValidationErrorCode, http.StatusBadRequest},
		{qterrors.ConfigurationErrorCode, http.StatusUnprocessableEntity},
		{qterrors.TemplateErrorCode, http.StatusInternalServerError},
		{qterrors.UnknownErrorCode, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, StatusFor(tt.code))
		})
	}
}

func TestToHttpError_PlainError(t *testing.T) {
	httpErr := toHttpError(errors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "disk on fire", httpErr.Message)
	assert.Empty(t, httpErr.Code)
}

func TestServer_StartStopsOnCancel(t *testing.T) {
	s := NewServer(&Config{Addr: "127.0.0.1:0"}, generator.NewService(extractor.NewExtractor(nil), templates.NewRegistry("", nil), nil), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestDefaultConfig_ListensOnLoopback(t *testing.T) {
	cfg := DefaultConfig()

	host, port, err := net.SplitHostPort(cfg.Addr)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)
	assert.Equal(t, "8085", port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
