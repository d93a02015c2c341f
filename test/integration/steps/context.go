// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/wealthflow/backend/config"
	"github.com/wealthflow/backend/internal/infra/dependency"
	"github.com/wealthflow/backend/internal/integration/persistence"
	"github.com/wealthflow/backend/internal/integration/persistence/model"
	"github.com/wealthflow/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	injector     *dependency.Injector
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string
	accessToken    string

	// Values captured from responses, substituted as {{name}} in paths and bodies.
	remembered map[string]string

	// Storage
	backend string
	db      *mock.Db
	redis   *redis.Client
	storage *dependency.Storage

	clock       *mock.Time
	transcriber *mock.Transcriber
	cfg         *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// Set Gin to test mode
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			remembered:     make(map[string]string),
			backend:        "memory",
			clock:          mock.NewTime(),
			transcriber:    mock.NewTranscriber(),
			cfg: &config.Config{
				Server:  config.ServerConfig{Port: 8080, Environment: "test"},
				Storage: config.StorageConfig{Key: config.DefaultStorageKey},
				Lock:    config.LockConfig{SessionDuration: time.Hour},
			},
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc == nil {
			return ctx, nil
		}
		tc.stopServer()
		if tc.db != nil {
			if clearErr := tc.db.ClearDB(); clearErr != nil {
				return ctx, clearErr
			}
		}
		if tc.redis != nil {
			if clearErr := mock.ClearRedis(tc.redis); clearErr != nil {
				return ctx, clearErr
			}
		}
		return ctx, nil
	})

	// Register step definitions
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerLedgerSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should not exist$`, theResponseFieldShouldNotExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, iRememberTheResponseFieldAs)
}

// startServer wires the application on the scenario's storage the first time
// a request is sent, so Given steps can still change configuration.
func (tc *TestContext) startServer(ctx context.Context) error {
	if tc.server != nil {
		return nil
	}

	if tc.storage == nil {
		storage, err := tc.openStorage()
		if err != nil {
			return err
		}
		tc.storage = storage
	}

	injector, err := dependency.NewInjectorWithStorage(ctx, tc.cfg, tc.storage,
		dependency.WithClock(tc.clock.Now),
		dependency.WithTranscriber(tc.transcriber),
	)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	tc.injector = injector
	tc.server = httptest.NewServer(injector.Router.Setup(tc.cfg.Server.Environment))
	return nil
}

func (tc *TestContext) stopServer() {
	if tc.server != nil {
		tc.server.Close()
		tc.server = nil
	}
	tc.injector = nil
}

func (tc *TestContext) openStorage() (*dependency.Storage, error) {
	key := tc.cfg.Storage.Key
	switch tc.backend {
	case "memory":
		return dependency.NewMemoryStorage(), nil
	case config.StorageBackendSQLite:
		tc.db = mock.NewDb(map[string]any{
			model.StateBlobModel{}.TableName(): &model.StateBlobModel{},
		})
		return &dependency.Storage{
			Backend:     config.StorageBackendSQLite,
			Repository:  persistence.NewSQLStateRepository(tc.db.DbConn, key),
			HealthCheck: func() bool { return true },
		}, nil
	case config.StorageBackendRedis:
		tc.redis = mock.NewRedis()
		client := tc.redis
		return &dependency.Storage{
			Backend:    config.StorageBackendRedis,
			Repository: persistence.NewRedisStateRepository(client, key),
			HealthCheck: func() bool {
				return client.Ping(context.Background()).Err() == nil
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown test backend %q", tc.backend)
}

// replacePlaceholders substitutes {{name}} with remembered values.
func (tc *TestContext) replacePlaceholders(content string) string {
	for name, value := range tc.remembered {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (tc *TestContext) executeRequest(ctx context.Context, method, endpoint string, payload []byte) error {
	if err := tc.startServer(ctx); err != nil {
		return err
	}

	url := tc.server.URL + tc.replacePlaceholders(endpoint)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Add headers
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	// Add session token if present
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.startServer(ctx)
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.executeRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.executeRequest(ctx, method, endpoint, []byte(tc.replacePlaceholders(body.Content)))
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := responseField(ctx, field)
	return err
}

func theResponseFieldShouldNotExist(ctx context.Context, field string) error {
	if _, err := responseField(ctx, field); err == nil {
		return fmt.Errorf("field '%s' should not be in the response", field)
	}
	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}

	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list", field)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func iRememberTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc := GetTestContext(ctx)
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}
	tc.remembered[name] = fmt.Sprintf("%v", value)
	return nil
}

// responseField resolves a dot separated path such as "accounts.0.balance".
func responseField(ctx context.Context, field string) (any, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}

	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := getFieldValue(data, field)
	if !ok {
		return nil, fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}
	return value, nil
}

func getFieldValue(object any, dotSeparatedField string) (any, bool) {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i < 0 || i >= len(arr) {
				return nil, false
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil, false
		}
		field, ok = m[currentField]
		if !ok {
			return nil, false
		}
	}
	return field, true
}
