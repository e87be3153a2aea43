package reconcile

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"store-sync/core/stores"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	db, mock := setupMockDB(t)
	src := &fakeSource{files: map[string]string{
		"/PICKERNORTHGATE.csv": "Part Number,Quantity on Hand\nA1,2\n",
	}}
	svc := NewService(db, []stores.Store{testStore()}, func() (Source, error) {
		return src, nil
	}, &fakeNotifier{}, nil, "unknown", zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, mock
}

func TestHandleReconcile(t *testing.T) {
	app, mock := setupTestApp(t)

	mock.ExpectQuery("SELECT name, COUNT\\(name\\)").
		WillReturnRows(sqlmock.NewRows([]string{"name", "count"}).AddRow("A1", 2))

	req := httptest.NewRequest("GET", "/manual/reconcile", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Inventory reconciliation completed", body["message"])
}

func TestHandleReconcile_Failure(t *testing.T) {
	app, mock := setupTestApp(t)

	mock.ExpectQuery("SELECT name, COUNT\\(name\\)").
		WillReturnError(errors.New("connection reset"))

	req := httptest.NewRequest("GET", "/manual/reconcile", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	assert.Contains(t, body["error"], "northgate")
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, nil, nil, nil, nil, "unknown", zap.NewNop())

	assert.Equal(t, "reconcile", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
