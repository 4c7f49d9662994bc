package handlers

import (
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

func collectionRouter(repo db.CollectionRepo) *gin.Engine {
	r := gin.New()
	NewCollectionHandler(repo).Register(r.Group("/api"))
	return r
}

func testJob() models.Collection {
	return models.Collection{
		ID:            primitive.NewObjectID(),
		Code:          "COL-0007",
		Producer:      "Dental Bali",
		Status:        models.CollectionTodo,
		ScheduledTime: time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC),
		VehicleID:     "DK 1289 BUY",
	}
}

func TestCollectionList_Filters(t *testing.T) {
	repo := &MockCollectionRepo{}
	filter := db.CollectionFilter{Status: models.CollectionTodo, VehicleID: "DK 1289 BUY"}
	repo.On("GetAll", mock.Anything, int64(1), int64(10), filter).Return(result.OKPage([]models.Collection{testJob()},
		pagination.BuildLinks(1, 1, "/api/collections"),
		pagination.BuildMeta(1, 10, 1, "/api/collections")))

	w := do(collectionRouter(repo), http.MethodGet, "/api/collections?status=todo&vehicleId=DK%201289%20BUY", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"COL-0007"`)
	repo.AssertExpectations(t)
}

func TestCollectionCreate(t *testing.T) {
	repo := &MockCollectionRepo{}
	job := testJob()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(in models.CreateCollection) bool {
		return in.Code == "COL-0007" && in.ScheduledTime.Equal(job.ScheduledTime)
	})).Return(result.OK(job))

	w := do(collectionRouter(repo), http.MethodPost, "/api/collections",
		`{"id":"COL-0007","producer":"Dental Bali","status":"todo","scheduledTime":"2025-02-03T10:00:00Z","vehicleId":"DK 1289 BUY"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"data":{`)
}

func TestCollectionComplete(t *testing.T) {
	repo := &MockCollectionRepo{}
	job := testJob()
	done := time.Date(2025, 2, 3, 11, 0, 0, 0, time.UTC)
	job.Status = models.CollectionDone
	job.CompletedTime = &done
	repo.On("MarkCompleted", mock.Anything, job.ID.Hex()).Return(result.OK(job))
	repo.On("MarkCompleted", mock.Anything, "gone").Return(result.Fail[models.Collection]("Collection not found"))
	r := collectionRouter(repo)

	w := do(r, http.MethodPost, "/api/collections/"+job.ID.Hex()+"/complete", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"done"`)
	assert.Contains(t, w.Body.String(), `"completedTime":"2025-02-03T11:00:00Z"`)

	w = do(r, http.MethodPost, "/api/collections/gone/complete", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Collection not found"}`, w.Body.String())
}

func TestCollectionGetUpdateDelete(t *testing.T) {
	repo := &MockCollectionRepo{}
	job := testJob()
	id := job.ID.Hex()
	repo.On("GetByID", mock.Anything, id).Return(result.OK(job))
	repo.On("Update", mock.Anything, id, mock.Anything).Return(result.Fail[models.Collection]("Collection not found or update failed"))
	repo.On("Delete", mock.Anything, id).Return(result.Fail[bool]("Collection not found"))
	r := collectionRouter(repo)

	w := do(r, http.MethodGet, "/api/collections/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"vehicleId":"DK 1289 BUY"`)

	w = do(r, http.MethodPut, "/api/collections/"+id, `{"status":"anomaly"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPut, "/api/collections/"+id, `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/api/collections/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
