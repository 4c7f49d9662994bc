package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ukydev/wastefleet/internal/db"
	"github.com/ukydev/wastefleet/internal/models"
	"github.com/ukydev/wastefleet/internal/pagination"
	"github.com/ukydev/wastefleet/internal/result"
)

func vehicleRouter(repo db.VehicleRepo) *gin.Engine {
	r := gin.New()
	NewVehicleHandler(repo).Register(r.Group("/api"))
	return r
}

func testVehicle() models.Vehicle {
	now := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	return models.Vehicle{
		ID:        primitive.NewObjectID(),
		VehicleID: "DK 8080 YU",
		Driver:    "Nyoman Bagiada",
		Status:    models.VehicleIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestVehicleList(t *testing.T) {
	repo := &MockVehicleRepo{}
	v := testVehicle()
	page := result.OKPage([]models.Vehicle{v},
		pagination.BuildLinks(2, 3, "/api/vehicles"),
		pagination.BuildMeta(2, 5, 11, "/api/vehicles"))
	repo.On("GetAll", mock.Anything, int64(2), int64(5), db.VehicleFilter{Status: models.VehicleIdle}).Return(page)

	w := do(vehicleRouter(repo), http.MethodGet, "/api/vehicles?page=2&limit=5&status=idle", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data  []models.Vehicle `json:"data"`
		Links pagination.Links `json:"links"`
		Meta  pagination.Meta  `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "/api/vehicles?page=3", *body.Links.Next)
	assert.Equal(t, int64(6), *body.Meta.From)
	repo.AssertExpectations(t)
}

func TestVehicleList_DefaultsAndIgnoredStatus(t *testing.T) {
	repo := &MockVehicleRepo{}
	empty := result.OKPage[models.Vehicle](nil,
		pagination.BuildLinks(1, 0, "/api/vehicles"),
		pagination.BuildMeta(1, 10, 0, "/api/vehicles"))
	repo.On("GetAll", mock.Anything, int64(1), int64(10), db.VehicleFilter{}).Return(empty)

	w := do(vehicleRouter(repo), http.MethodGet, "/api/vehicles?page=abc&limit=&status=parked", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"data": [],
		"links": {"first": null, "last": null, "prev": null, "next": null},
		"meta": {"current_page": 1, "from": null, "last_page": 0, "path": "/api/vehicles", "per_page": 10, "to": null, "total": 0}
	}`, w.Body.String())
}

func TestVehicleList_Failure(t *testing.T) {
	repo := &MockVehicleRepo{}
	repo.On("GetAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(result.FailPage[models.Vehicle]("server selection timeout"))

	w := do(vehicleRouter(repo), http.MethodGet, "/api/vehicles", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"server selection timeout"}`, w.Body.String())
}

func TestVehicleCreate(t *testing.T) {
	repo := &MockVehicleRepo{}
	v := testVehicle()
	repo.On("Create", mock.Anything, models.CreateVehicle{
		VehicleID: "DK 8080 YU",
		Driver:    "Nyoman Bagiada",
		Status:    models.VehicleIdle,
	}).Return(result.OK(v))

	w := do(vehicleRouter(repo), http.MethodPost, "/api/vehicles",
		`{"vehicleId":"DK 8080 YU","driver":"Nyoman Bagiada","status":"idle"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, v.ID.Hex(), body["data"]["_id"])
	assert.Equal(t, "DK 8080 YU", body["data"]["vehicleId"])
}

func TestVehicleCreate_Errors(t *testing.T) {
	repo := &MockVehicleRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(result.Fail[models.Vehicle]("driver is required"))
	r := vehicleRouter(repo)

	w := do(r, http.MethodPost, "/api/vehicles", `{"vehicleId":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON data"}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/vehicles", `{"vehicleId":"DK 1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"driver is required"}`, w.Body.String())
}

func TestVehicleGet(t *testing.T) {
	repo := &MockVehicleRepo{}
	v := testVehicle()
	repo.On("GetByID", mock.Anything, v.ID.Hex()).Return(result.OK(v))
	repo.On("GetByID", mock.Anything, "nope").Return(result.Fail[models.Vehicle]("the provided hex string is not a valid ObjectID"))
	r := vehicleRouter(repo)

	w := do(r, http.MethodGet, "/api/vehicles/"+v.ID.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)
	var bare map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bare))
	assert.Equal(t, v.ID.Hex(), bare["_id"])
	assert.NotContains(t, bare, "data")

	w = do(r, http.MethodGet, "/api/vehicles/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"the provided hex string is not a valid ObjectID"}`, w.Body.String())
}

func TestVehicleActiveAndByVehicleID(t *testing.T) {
	repo := &MockVehicleRepo{}
	v := testVehicle()
	repo.On("GetActive", mock.Anything).Return(result.OK([]models.Vehicle{v}))
	repo.On("GetByVehicleID", mock.Anything, "DK 8080 YU").Return(result.OK(v))
	repo.On("GetByVehicleID", mock.Anything, "DK 0").Return(result.Fail[models.Vehicle]("Vehicle not found"))
	r := vehicleRouter(repo)

	w := do(r, http.MethodGet, "/api/vehicles/active", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[`)

	w = do(r, http.MethodGet, "/api/vehicles/by-vehicle-id/DK%208080%20YU", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/vehicles/by-vehicle-id/DK%200", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Vehicle not found"}`, w.Body.String())
}

func TestVehicleUpdate(t *testing.T) {
	repo := &MockVehicleRepo{}
	v := testVehicle()
	v.StopsDone = 4
	id := v.ID.Hex()
	repo.On("Update", mock.Anything, id, mock.MatchedBy(func(in models.UpdateVehicle) bool {
		return in.StopsDone != nil && *in.StopsDone == 4 && in.Driver == nil
	})).Return(result.OK(v))
	repo.On("Update", mock.Anything, "missing", mock.Anything).
		Return(result.Fail[models.Vehicle]("Vehicle not found or update failed"))
	r := vehicleRouter(repo)

	w := do(r, http.MethodPut, "/api/vehicles/"+id, `{"stopsDone":4}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stopsDone":4`)

	w = do(r, http.MethodPut, "/api/vehicles/missing", `{"stopsDone":4}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Vehicle not found or update failed"}`, w.Body.String())

	w = do(r, http.MethodPut, "/api/vehicles/"+id, `{"status":"parked"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/api/vehicles/"+id, `not json`)
	assert.JSONEq(t, `{"error":"Invalid JSON data"}`, w.Body.String())
}

func TestVehicleDelete(t *testing.T) {
	repo := &MockVehicleRepo{}
	id := primitive.NewObjectID().Hex()
	repo.On("Delete", mock.Anything, id).Return(result.OKWithMessage(true, "Vehicle deleted successfully")).Once()
	repo.On("Delete", mock.Anything, id).Return(result.Fail[bool]("Vehicle not found")).Once()
	r := vehicleRouter(repo)

	w := do(r, http.MethodDelete, "/api/vehicles/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Vehicle deleted successfully"}`, w.Body.String())

	w = do(r, http.MethodDelete, "/api/vehicles/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Vehicle not found"}`, w.Body.String())
}
