package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/ukydev/wastefleet/internal/db"
	"github.com/ukydev/wastefleet/internal/models"
	"github.com/ukydev/wastefleet/internal/result"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockVehicleRepo is a mock implementation of db.VehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, in models.CreateVehicle) result.Result[models.Vehicle] {
	return m.Called(ctx, in).Get(0).(result.Result[models.Vehicle])
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id string) result.Result[models.Vehicle] {
	return m.Called(ctx, id).Get(0).(result.Result[models.Vehicle])
}

func (m *MockVehicleRepo) GetByVehicleID(ctx context.Context, vehicleID string) result.Result[models.Vehicle] {
	return m.Called(ctx, vehicleID).Get(0).(result.Result[models.Vehicle])
}

func (m *MockVehicleRepo) GetAll(ctx context.Context, page, limit int64, filter db.VehicleFilter) result.Page[models.Vehicle] {
	return m.Called(ctx, page, limit, filter).Get(0).(result.Page[models.Vehicle])
}

func (m *MockVehicleRepo) GetActive(ctx context.Context) result.Result[[]models.Vehicle] {
	return m.Called(ctx).Get(0).(result.Result[[]models.Vehicle])
}

func (m *MockVehicleRepo) Update(ctx context.Context, id string, in models.UpdateVehicle) result.Result[models.Vehicle] {
	return m.Called(ctx, id, in).Get(0).(result.Result[models.Vehicle])
}

func (m *MockVehicleRepo) Delete(ctx context.Context, id string) result.Result[bool] {
	return m.Called(ctx, id).Get(0).(result.Result[bool])
}

// MockProducerRepo is a mock implementation of db.ProducerRepo
type MockProducerRepo struct {
	mock.Mock
}

func (m *MockProducerRepo) Create(ctx context.Context, in models.CreateProducer) result.Result[models.Producer] {
	return m.Called(ctx, in).Get(0).(result.Result[models.Producer])
}

func (m *MockProducerRepo) GetByID(ctx context.Context, id string) result.Result[models.Producer] {
	return m.Called(ctx, id).Get(0).(result.Result[models.Producer])
}

func (m *MockProducerRepo) GetAll(ctx context.Context, page, limit int64, filter db.ProducerFilter) result.Page[models.Producer] {
	return m.Called(ctx, page, limit, filter).Get(0).(result.Page[models.Producer])
}

func (m *MockProducerRepo) Search(ctx context.Context, term string) result.Result[[]models.Producer] {
	return m.Called(ctx, term).Get(0).(result.Result[[]models.Producer])
}

func (m *MockProducerRepo) GetByCity(ctx context.Context, city string) result.Result[[]models.Producer] {
	return m.Called(ctx, city).Get(0).(result.Result[[]models.Producer])
}

func (m *MockProducerRepo) Update(ctx context.Context, id string, in models.UpdateProducer) result.Result[models.Producer] {
	return m.Called(ctx, id, in).Get(0).(result.Result[models.Producer])
}

func (m *MockProducerRepo) Delete(ctx context.Context, id string) result.Result[bool] {
	return m.Called(ctx, id).Get(0).(result.Result[bool])
}

// MockCollectionRepo is a mock implementation of db.CollectionRepo
type MockCollectionRepo struct {
	mock.Mock
}

func (m *MockCollectionRepo) Create(ctx context.Context, in models.CreateCollection) result.Result[models.Collection] {
	return m.Called(ctx, in).Get(0).(result.Result[models.Collection])
}

func (m *MockCollectionRepo) GetByID(ctx context.Context, id string) result.Result[models.Collection] {
	return m.Called(ctx, id).Get(0).(result.Result[models.Collection])
}

func (m *MockCollectionRepo) GetAll(ctx context.Context, page, limit int64, filter db.CollectionFilter) result.Page[models.Collection] {
	return m.Called(ctx, page, limit, filter).Get(0).(result.Page[models.Collection])
}

func (m *MockCollectionRepo) GetByStatus(ctx context.Context, status models.CollectionStatus) result.Result[[]models.Collection] {
	return m.Called(ctx, status).Get(0).(result.Result[[]models.Collection])
}

func (m *MockCollectionRepo) GetByVehicle(ctx context.Context, vehicleID string) result.Result[[]models.Collection] {
	return m.Called(ctx, vehicleID).Get(0).(result.Result[[]models.Collection])
}

func (m *MockCollectionRepo) Update(ctx context.Context, id string, in models.UpdateCollection) result.Result[models.Collection] {
	return m.Called(ctx, id, in).Get(0).(result.Result[models.Collection])
}

func (m *MockCollectionRepo) MarkCompleted(ctx context.Context, id string) result.Result[models.Collection] {
	return m.Called(ctx, id).Get(0).(result.Result[models.Collection])
}

func (m *MockCollectionRepo) Delete(ctx context.Context, id string) result.Result[bool] {
	return m.Called(ctx, id).Get(0).(result.Result[bool])
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
