package recommendation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthtrack-api/internal/handler"
	"github.com/jwalitptl/healthtrack-api/internal/model"
	recService "github.com/jwalitptl/healthtrack-api/internal/service/recommendation"
)

type fakeProfileRepo struct{}

func (fakeProfileRepo) Upsert(context.Context, *model.HealthProfile) error { return nil }
func (fakeProfileRepo) Get(context.Context, string) (*model.HealthProfile, error) {
	return nil, nil
}

type fakeBMIRepo struct{}

func (fakeBMIRepo) Upsert(context.Context, *model.BMIRecord) error { return nil }
func (fakeBMIRepo) Get(context.Context, string, string) (*model.BMIRecord, error) {
	return nil, nil
}
func (fakeBMIRepo) ListByUser(context.Context, string) ([]*model.BMIRecord, error) {
	return nil, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := recService.NewService(fakeProfileRepo{}, fakeBMIRepo{})
	h := NewHandler(svc)

	engine := gin.New()
	group := engine.Group("")
	group.Use(func(c *gin.Context) {
		c.Set(handler.ContextUsername, "somsak")
	})
	h.RegisterRoutes(group)
	return engine
}

func doRequest(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestDiseasesEndpoint(t *testing.T) {
	engine := newTestRouter()

	w := doRequest(engine, "/ncds")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string          `json:"status"`
		Data   []model.Disease `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.NotEmpty(t, resp.Data)

	ids := make(map[string]bool, len(resp.Data))
	for _, d := range resp.Data {
		ids[d.ID] = true
	}
	assert.True(t, ids["diabetes"])
	assert.True(t, ids["hypertension"])
}

func TestDiseaseDetailEndpoint(t *testing.T) {
	engine := newTestRouter()

	w := doRequest(engine, "/ncds/diabetes")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.Disease `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "diabetes", resp.Data.ID)
	assert.NotEmpty(t, resp.Data.RiskFactors)
	assert.NotEmpty(t, resp.Data.Prevention)
	assert.NotEmpty(t, resp.Data.Treatment)
}

func TestDiseaseDetailUnknownID(t *testing.T) {
	engine := newTestRouter()

	w := doRequest(engine, "/ncds/common-cold")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "unknown disease", resp.Message)
}

func TestExercisesEndpointFiltersByIntensity(t *testing.T) {
	engine := newTestRouter()

	w := doRequest(engine, "/recommendations/exercise?intensity=low")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.Exercise `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data)
	for _, ex := range resp.Data {
		assert.Equal(t, "low", ex.Intensity)
	}
}
