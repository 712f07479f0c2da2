package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type humidorContainer struct {
	testcontainers.Container
	URI string
}

func setupHumidor(ctx context.Context, t *testing.T) (*humidorContainer, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	natPort := nat.Port(port + "/tcp")

	req := testcontainers.ContainerRequest{
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    "../",
			Dockerfile: "Dockerfile",
		},
		ExposedPorts: []string{string(natPort)},
		Env: map[string]string{
			"PORT":         port,
			"GIN_MODE":     "release",
			"DATABASE_URL": ":memory:",
		},
		WaitingFor: wait.ForHTTP("/api/v1/dashboard").
			WithPort(natPort).
			WithStatusCodeMatcher(func(status int) bool {
				return status == 200
			}).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	var humidorC *humidorContainer
	if container != nil {
		humidorC = &humidorContainer{Container: container}
	}
	if err != nil {
		return humidorC, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return humidorC, err
	}

	mappedPort, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return humidorC, err
	}

	humidorC.URI = fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	return humidorC, nil
}

func createCigar(t *testing.T, baseURL, name string, quantity int) map[string]interface{} {
	form := url.Values{}
	form.Set("name", name)
	form.Set("quantity", fmt.Sprintf("%d", quantity))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, values := range form {
		require.NoError(t, writer.WriteField(key, values[0]))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/cigars", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if resp.StatusCode != http.StatusCreated {
		t.Logf("Create cigar failed: status=%d, body=%s", resp.StatusCode, string(respBody))
	}
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(respBody, &result))
	return result
}

func startTasting(t *testing.T, baseURL string, cigarID float64) map[string]interface{} {
	reqBody := strings.NewReader(fmt.Sprintf(`{"cigar_id": %d, "setting": "patio"}`, int(cigarID)))
	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/tastings", reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(respBody))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(respBody, &result))
	return result
}

func finalizeTasting(t *testing.T, baseURL string, tastingID float64, fields map[string]string) (*http.Response, map[string]interface{}) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	endpoint := fmt.Sprintf("%s/api/v1/tastings/%d/finalize", baseURL, int(tastingID))
	req, err := http.NewRequest(http.MethodPut, endpoint, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]interface{}
	if len(respBody) > 0 {
		_ = json.Unmarshal(respBody, &result)
	}
	return resp, result
}

func getCigar(t *testing.T, baseURL string, cigarID float64) map[string]interface{} {
	resp, err := http.Get(fmt.Sprintf("%s/api/v1/cigars/%d", baseURL, int(cigarID)))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &result))
	return result
}

func TestE2E_Dashboard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	humidorC, err := setupHumidor(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, humidorC)

	resp, err := http.Get(humidorC.URI + "/api/v1/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &result))

	totalCigars, ok := result["total_cigars"].(float64)
	assert.True(t, ok, "total_cigars should be a number")
	assert.GreaterOrEqual(t, totalCigars, 0.0)
	assert.Equal(t, "0.0", result["average_score"])
}

func TestE2E_TastingLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	humidorC, err := setupHumidor(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, humidorC)

	cigar := createCigar(t, humidorC.URI, "Robusto X", 2)
	cigarID := cigar["id"].(float64)

	tasting := startTasting(t, humidorC.URI, cigarID)
	tastingID := tasting["id"].(float64)
	assert.Equal(t, "in_progress", tasting["status"].(string))

	resp, finalized := finalizeTasting(t, humidorC.URI, tastingID, map[string]string{
		"score":         "9",
		"flavor_coffee": "true",
		"notes":         "excellent evening smoke",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "finalized", finalized["status"].(string))
	assert.Equal(t, 9.0, finalized["score"].(float64))
	assert.Equal(t, true, finalized["flavor_coffee"].(bool))

	cigarAfter := getCigar(t, humidorC.URI, cigarID)
	assert.Equal(t, 1.0, cigarAfter["quantity"].(float64), "finalize should take one out of stock")

	t.Run("second finalize conflicts", func(t *testing.T) {
		resp, _ := finalizeTasting(t, humidorC.URI, tastingID, map[string]string{"score": "5"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		cigarAgain := getCigar(t, humidorC.URI, cigarID)
		assert.Equal(t, 1.0, cigarAgain["quantity"].(float64), "stock must not be decremented twice")
	})
}

func TestE2E_FinalizeAtZeroStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	humidorC, err := setupHumidor(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, humidorC)

	cigar := createCigar(t, humidorC.URI, "Sold Out", 0)
	cigarID := cigar["id"].(float64)

	tasting := startTasting(t, humidorC.URI, cigarID)
	tastingID := tasting["id"].(float64)

	resp, finalized := finalizeTasting(t, humidorC.URI, tastingID, map[string]string{"score": "6"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "finalized", finalized["status"].(string))

	cigarAfter := getCigar(t, humidorC.URI, cigarID)
	assert.Equal(t, 0.0, cigarAfter["quantity"].(float64), "quantity never goes negative")
}

func TestE2E_ListTastingsByStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	humidorC, err := setupHumidor(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, humidorC)

	cigar := createCigar(t, humidorC.URI, "Partition", 5)
	cigarID := cigar["id"].(float64)

	first := startTasting(t, humidorC.URI, cigarID)
	startTasting(t, humidorC.URI, cigarID)

	resp, _ := finalizeTasting(t, humidorC.URI, first["id"].(float64), map[string]string{"score": "8"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listResp, err := http.Get(humidorC.URI + "/api/v1/tastings?status=in_progress")
	require.NoError(t, err)
	defer listResp.Body.Close()
	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	body, err := io.ReadAll(listResp.Body)
	require.NoError(t, err)

	var inProgress []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &inProgress))
	assert.Len(t, inProgress, 1)

	finalizedResp, err := http.Get(humidorC.URI + "/api/v1/tastings?status=finalized&q=partition")
	require.NoError(t, err)
	defer finalizedResp.Body.Close()

	body, err = io.ReadAll(finalizedResp.Body)
	require.NoError(t, err)

	var finalized []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &finalized))
	assert.Len(t, finalized, 1)

	badResp, err := http.Get(humidorC.URI + "/api/v1/tastings?status=bogus")
	require.NoError(t, err)
	defer badResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, badResp.StatusCode)
}

func TestE2E_Export(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	humidorC, err := setupHumidor(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, humidorC)

	createCigar(t, humidorC.URI, "Exported", 3)

	resp, err := http.Get(humidorC.URI + "/api/v1/export")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var export map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &export))

	cigars, ok := export["cigars"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, cigars, 1)

	signature, ok := export["signature"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, signature)
}
