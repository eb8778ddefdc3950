package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/laptop-advisor/internal/service"
)

// execute runs the root command with args and returns its stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LAPTOP_ADVISOR_URL", "")

	serviceURL, timeoutSeconds, locale, logLevel, outputFormat = "", 0, "", "", formatDetailed
	manufacturer, modelName, purposeValue, showDetails = "", "", "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func newTestServer(t *testing.T, gotBody *service.RecommendRequest) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(service.OptionsPath, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"manufacturers":["Dell"],"model_names":{"Dell":["XPS13"]}}`))
	})
	mux.HandleFunc(service.RecommendPath, func(w http.ResponseWriter, r *http.Request) {
		if gotBody != nil {
			_ = json.NewDecoder(r.Body).Decode(gotBody)
		}
		_, _ = w.Write([]byte(`{"recommendations":[{"name":"Dell XPS 13","screen_size":"13.3 inches","screen":"FHD","ram":"16GB","storage":"512GB SSD","gpu":"Iris Xe","price_tzs":4599872}]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRecommendCommand_JSON(t *testing.T) {
	var body service.RecommendRequest
	server := newTestServer(t, &body)

	out, err := execute(t, "recommend", "--url", server.URL,
		"--manufacturer", "Dell", "--model", "XPS13", "--purpose", "web-based tasks",
		"--format", "json")
	require.NoError(t, err)

	assert.Equal(t, service.RecommendRequest{Manufacturer: "Dell", ModelName: "XPS13", Category: "Notebook"}, body)

	var recs []service.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "Dell XPS 13", recs[0].Name)
}

func TestRecommendCommand_CompactWithDetails(t *testing.T) {
	server := newTestServer(t, nil)

	out, err := execute(t, "recommend", "--url", server.URL, "--format", "compact")
	require.NoError(t, err)
	assert.Equal(t, "1. Dell XPS 13 - 4,599,872 Tsh\n", out)

	out, err = execute(t, "recommend", "--url", server.URL, "--format", "compact", "--details", "--locale", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "4.599.872 Tsh")
	assert.Contains(t, out, service.PriceDisclaimer)
}

func TestRecommendCommand_ServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer server.Close()

	out, err := execute(t, "recommend", "--url", server.URL)
	require.Error(t, err)
	assert.True(t, service.IsHTTPError(err))
	assert.Contains(t, out, "model not found")
}

func TestOptionsCommand_Compact(t *testing.T) {
	server := newTestServer(t, nil)

	out, err := execute(t, "options", "--url", server.URL, "--format", "compact")
	require.NoError(t, err)
	assert.Contains(t, out, "Dell (1 models)")
	assert.Contains(t, out, "  - XPS13")
}

func TestPurposesCommand_Compact(t *testing.T) {
	out, err := execute(t, "purposes", "--format", "compact")
	require.NoError(t, err)
	assert.Contains(t, out, "light productivity\t2 in 1 Convertible\n")
	assert.Contains(t, out, "Business\tUltrabook\n")
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "purposes", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --format")
}

func TestInvalidURLFlag(t *testing.T) {
	_, err := execute(t, "purposes", "--url", "localhost:8000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings")
}
