package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"croprecd/internal/predict"
	"croprecd/internal/registry"
	"croprecd/internal/registry/registrytest"
	"croprecd/pkg/types"
)

const basicBody = `{"N":90,"P":42,"K":43,"temperature":20.8,"humidity":82,"ph":6.5,"rainfall":202.9}`

func soilBody(soil string, rainfall float64) string {
	return fmt.Sprintf(`{"soil_type":%q,"soil_ph":6.5,"temperature":24,"humidity":70,"wind_speed":12,"N":90,"P":42,"K":43,"annual_rainfall":%g}`, soil, rainfall)
}

func TestE2E_BasicFlow(t *testing.T) {
	srv, _ := newServerForDir(t, createArtifactsDir(t, registry.RevisionBasic), registry.RevisionBasic, predict.Config{})

	resp, body := httpGet(t, srv.URL+"/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hc types.HealthCheck
	require.NoError(t, json.Unmarshal(body, &hc))
	assert.Equal(t, "healthy", hc.Status)
	assert.Equal(t, "1.0.0", hc.Version)

	resp, body = httpPostJSON(t, srv.URL+"/predict", basicBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var res types.PredictionResult
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "rice", res.PredictedCrop)
	assert.InDelta(t, 0.7917, res.Confidence, 1e-4)
	assert.InDelta(t, 1.0, types.Sum(res.AllProbabilities), 1e-9)

	resp, body = httpGet(t, srv.URL+"/crops")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var crops types.CropsResponse
	require.NoError(t, json.Unmarshal(body, &crops))
	assert.Equal(t, registrytest.Crops, crops.AvailableCrops)

	resp, _ = httpGet(t, srv.URL+"/soil-types")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = httpGet(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "croprecd_predict_predictions_total")
	assert.Contains(t, string(body), "croprecd_http_requests_total")
}

func TestE2E_SoilFlow(t *testing.T) {
	srv, _ := newServerForDir(t, createArtifactsDir(t, registry.RevisionSoil), registry.RevisionSoil, predict.Config{})

	resp, body := httpPostJSON(t, srv.URL+"/predict", soilBody("Sandy", 1500))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"predicted_crop":"banana"`)

	resp, body = httpPostJSON(t, srv.URL+"/predict", soilBody("Volcanic", 1500))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

	resp, body = httpPostJSON(t, srv.URL+"/validate", soilBody("Loamy", 4000))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e types.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	require.Len(t, e.Details, 1)
	assert.Contains(t, e.Details[0], "annual_rainfall")

	resp, body = httpGet(t, srv.URL+"/model/info")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info types.ModelInfo
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, registry.SoilFeatures, info.Features)
	assert.Nil(t, info.NEstimators)
}

func TestE2E_MissingArtifactsServeUnhealthy(t *testing.T) {
	dir := t.TempDir()
	srv, svc := newServerForDir(t, dir, registry.RevisionBasic, predict.Config{})
	require.False(t, svc.Ready())

	resp, body := httpGet(t, srv.URL+"/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"unhealthy"`)

	resp, _ = httpPostJSON(t, srv.URL+"/predict", basicBody)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp, _ = httpPostJSON(t, srv.URL+"/predict/batch", "["+basicBody+"]")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp, _ = httpGet(t, srv.URL+"/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestE2E_CorruptArtifactServesUnhealthy(t *testing.T) {
	dir := createArtifactsDir(t, registry.RevisionBasic)
	overwrite(t, dir, registry.ModelFile, `{"type": "RandomForestClassifier", "trees": [`)
	srv, svc := newServerForDir(t, dir, registry.RevisionBasic, predict.Config{})
	require.False(t, svc.Ready())

	resp, _ := httpGet(t, srv.URL+"/model/info")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestE2E_BatchLimits(t *testing.T) {
	srv, _ := newServerForDir(t, createArtifactsDir(t, registry.RevisionBasic), registry.RevisionBasic, predict.Config{BatchWorkers: 8})

	batch := func(n int) string {
		items := make([]string, n)
		for i := range items {
			items[i] = basicBody
		}
		return "[" + strings.Join(items, ",") + "]"
	}

	resp, body := httpPostJSON(t, srv.URL+"/predict/batch", batch(predict.MaxBatchSize))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res []types.PredictionResult
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Len(t, res, predict.MaxBatchSize)

	resp, _ = httpPostJSON(t, srv.URL+"/predict/batch", batch(predict.MaxBatchSize+1))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestE2E_ConcurrentPredictionsWithCache(t *testing.T) {
	srv, svc := newServerForDir(t, createArtifactsDir(t, registry.RevisionBasic), registry.RevisionBasic, predict.Config{CacheSize: 16})

	var wg sync.WaitGroup
	codes := make([]int, 32)
	for i := range codes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(srv.URL+"/predict", "application/json", strings.NewReader(basicBody))
			if err != nil {
				return
			}
			resp.Body.Close()
			codes[i] = resp.StatusCode
		}()
	}
	wg.Wait()
	for i, c := range codes {
		assert.Equal(t, http.StatusOK, c, "request %d", i)
	}
	assert.Equal(t, 1, svc.CachedOutcomes())
}
