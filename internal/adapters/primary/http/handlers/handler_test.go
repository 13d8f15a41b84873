package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"titanguard/internal/adapters/primary/http/dto"
	"titanguard/internal/core/domain"
	"titanguard/internal/core/services"
	"titanguard/internal/testutil"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := new(testutil.MockArtifactStore)
	store.On("LoadArtifact", mock.Anything).Return(testutil.NewTestArtifact(), nil)
	store.On("LoadMetadata", mock.Anything).Return(testutil.NewTestMetadata(), nil)

	manager := services.NewManager(store)
	require.NoError(t, manager.Load(context.Background()))

	return NewRouter(New(manager))
}

func setupDegradedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := new(testutil.MockArtifactStore)
	store.On("LoadArtifact", mock.Anything).Return(testutil.NewTestArtifact(), nil)
	store.On("LoadMetadata", mock.Anything).Return(nil, domain.ErrMetadataUnavailable)

	manager := services.NewManager(store)
	require.NoError(t, manager.Load(context.Background()))

	return NewRouter(New(manager))
}

func setupUnloadedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := services.NewManager(new(testutil.MockArtifactStore))
	return NewRouter(New(manager))
}

func postForm(r *gin.Engine, values url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ============================================================================
// Web pages
// ============================================================================

func TestIndex(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TitanGuard AI")
	assert.Contains(t, w.Body.String(), "Predict Survival")
}

func TestPredictForm_Survived(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, url.Values{
		"pclass": {"1"}, "sex": {"1"}, "age": {"25"}, "fare": {"100"}, "embarked": {"0"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Survived (")
	assert.Contains(t, w.Body.String(), "🟢")
}

func TestPredictForm_DidNotSurvive(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, url.Values{
		"pclass": {"3"}, "sex": {"0"}, "age": {"35"}, "fare": {"10"}, "embarked": {"0"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Did Not Survive (")
	assert.Contains(t, w.Body.String(), "🔴")
}

func TestPredictForm_ValidationError(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, url.Values{
		"pclass": {"4"}, "sex": {"1"}, "age": {"25"}, "fare": {"100"}, "embarked": {"0"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pclass must be 1, 2, or 3. Got: 4")
}

func TestPredictForm_MultipleErrors(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, url.Values{
		"pclass": {"4"}, "sex": {"1"}, "age": {"150"}, "fare": {"100"}, "embarked": {"0"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pclass must be 1, 2, or 3. Got: 4")
	assert.Contains(t, w.Body.String(), "Age must be between 0 and 120. Got: 150")
}

func TestPredictForm_NonNumericInput(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, url.Values{
		"pclass": {"1"}, "sex": {"1"}, "age": {"abc"}, "fare": {"100"}, "embarked": {"0"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Age must be a number. Got: abc")
}

func TestPredictForm_PreservesInput(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, url.Values{
		"pclass": {"2"}, "sex": {"1"}, "age": {"40"}, "fare": {"26.55"}, "embarked": {"1"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="26.55"`)
	assert.Contains(t, w.Body.String(), `value="40"`)
}

func TestMetricsPage(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "81.01%")
	assert.Contains(t, body, "Confusion Matrix")
	assert.Contains(t, body, ">92<")
	assert.Contains(t, body, "f1-score")
}

func TestMetricsPage_MetadataUnavailable(t *testing.T) {
	r := setupDegradedRouter(t)

	w := get(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Model metadata not found. Please retrain the model.")
}

// ============================================================================
// JSON API
// ============================================================================

func TestGetMetrics(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/api/metrics")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MetricsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 0.8101, resp.Accuracy)
	assert.Equal(t, 0.7571, resp.F1Score)
	assert.Equal(t, [2][2]int{{92, 13}, {21, 53}}, resp.ConfusionMatrix)
	assert.Contains(t, resp.ClassificationReport, "support")
}

func TestGetMetrics_MetadataUnavailable(t *testing.T) {
	r := setupDegradedRouter(t)

	w := get(r, "/api/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Model metadata not found", resp.Message)
}

func TestPredictAPI(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/predict", `{"pclass": 1, "sex": 1, "age": 25, "fare": 100, "embarked": 0}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PredictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, resp.Prediction)
	assert.True(t, resp.Survived)
	assert.Equal(t, "Survived", resp.ClassName)
	assert.Greater(t, resp.ProbabilitySurvived, 0.9)
	assert.InDelta(t, 1.0, resp.ProbabilitySurvived+resp.ProbabilityNotSurvived, 1e-9)
	assert.Equal(t, "1.0.0", resp.ModelVersion)
}

func TestPredictAPI_ZeroValuesAreValid(t *testing.T) {
	r := setupRouter(t)

	// sex=0 and embarked=0 are legitimate encodings, not missing fields.
	w := postJSON(r, "/api/predict", `{"pclass": 3, "sex": 0, "age": 0, "fare": 0, "embarked": 0}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPredictAPI_MissingFields(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/predict", `{"pclass": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Len(t, resp.Fields, 4)

	fields := make([]string, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"sex", "age", "fare", "embarked"}, fields)
}

func TestPredictAPI_InvalidValues(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/predict", `{"pclass": 4, "sex": 1, "age": 150, "fare": 100, "embarked": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Len(t, resp.Fields, 2)
	assert.Contains(t, resp.Message, "Pclass must be 1, 2, or 3. Got: 4")
	assert.Contains(t, resp.Message, "Age must be between 0 and 120. Got: 150")
}

func TestPredictAPI_MalformedBody(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(r, "/api/predict", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestPredictAPI_ModelNotReady(t *testing.T) {
	r := setupUnloadedRouter(t)

	w := postJSON(r, "/api/predict", `{"pclass": 1, "sex": 1, "age": 25, "fare": 100, "embarked": 0}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Model is not ready to serve", resp.Message)
}

func TestGetModelInfo(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/api/model")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ModelInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "1.0.0", resp.ModelVersion)
	assert.Equal(t, "logistic_regression", resp.Algorithm)
	assert.Equal(t, "ready", resp.State)
	assert.Equal(t, []string{"Pclass", "Sex", "Age", "Fare", "Embarked"}, resp.FeatureNames)
	assert.Equal(t, "Survived", resp.TargetName)
	assert.True(t, resp.MetadataLoaded)
}

func TestGetModelInfo_NotReady(t *testing.T) {
	r := setupUnloadedRouter(t)

	w := get(r, "/api/model")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ready", resp.ModelState)
	assert.Equal(t, "1.0.0", resp.ModelVersion)
}

func TestHealth_Degraded(t *testing.T) {
	r := setupDegradedRouter(t)

	w := get(r, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
}

func TestHealth_NotReady(t *testing.T) {
	r := setupUnloadedRouter(t)

	w := get(r, "/api/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "uninitialized", resp.ModelState)
}

// ============================================================================
// Middleware behavior
// ============================================================================

func TestRequestIDHeader(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/api/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDHeader_Propagated(t *testing.T) {
	r := setupRouter(t)

	req, _ := http.NewRequest("GET", "/api/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied-id", w.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	r := setupRouter(t)

	req, _ := http.NewRequest("OPTIONS", "/api/predict", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestInternalMetricsEndpoint(t *testing.T) {
	r := setupRouter(t)

	// Prime the counters with one request so the scrape has series to show.
	get(r, "/api/health")

	w := get(r, "/internal/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "api_requests_total")
}
