package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ukydev/wastefleet/internal/db"
	"github.com/ukydev/wastefleet/internal/models"
)

// CollectionHandler serves /api/collections.
type CollectionHandler struct {
	repo db.CollectionRepo
}

// NewCollectionHandler creates a new collection job handler
func NewCollectionHandler(repo db.CollectionRepo) *CollectionHandler {
	return &CollectionHandler{repo: repo}
}

// Register mounts the collection job routes on rg.
func (h *CollectionHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/collections")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/complete", h.Complete)
}

// List returns a page of jobs filtered by status, vehicleId and producer.
func (h *CollectionHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	filter := db.CollectionFilter{
		Status:    models.CollectionStatus(c.Query("status")),
		VehicleID: c.Query("vehicleId"),
		Producer:  c.Query("producer"),
	}

	res := h.repo.GetAll(c.Request.Context(), page, limit, filter)
	if !res.IsOK() {
		c.JSON(http.StatusInternalServerError, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create schedules a job.
func (h *CollectionHandler) Create(c *gin.Context) {
	var in models.CreateCollection
	if !bindJSON(c, &in) {
		return
	}
	res := h.repo.Create(c.Request.Context(), in)
	if !res.IsOK() {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Get returns the bare job document.
func (h *CollectionHandler) Get(c *gin.Context) {
	res := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	job, ok := res.Value()
	if !ok {
		errorJSON(c, http.StatusNotFound, res.Error())
		return
	}
	c.JSON(http.StatusOK, job)
}

// Update applies a partial update.
func (h *CollectionHandler) Update(c *gin.Context) {
	var in models.UpdateCollection
	if !bindJSON(c, &in) {
		return
	}
	if err := models.Validate(in); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	res := h.repo.Update(c.Request.Context(), c.Param("id"), in)
	if !res.IsOK() {
		c.JSON(http.StatusNotFound, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Complete marks a job done.
func (h *CollectionHandler) Complete(c *gin.Context) {
	res := h.repo.MarkCompleted(c.Request.Context(), c.Param("id"))
	if !res.IsOK() {
		c.JSON(http.StatusNotFound, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete removes a job.
func (h *CollectionHandler) Delete(c *gin.Context) {
	res := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if !res.IsOK() {
		errorJSON(c, http.StatusNotFound, res.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": res.Message()})
}
