package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ukydev/wastefleet/internal/db"
	"github.com/ukydev/wastefleet/internal/models"
)

// ProducerHandler serves /api/producers.
type ProducerHandler struct {
	repo db.ProducerRepo
}

// NewProducerHandler creates a new producer handler
func NewProducerHandler(repo db.ProducerRepo) *ProducerHandler {
	return &ProducerHandler{repo: repo}
}

// Register mounts the producer routes on rg.
func (h *ProducerHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/producers")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List searches when search is given, filters by city when city is given and
// otherwise returns a page. Search and city results are not paginated.
func (h *ProducerHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if term := c.Query("search"); term != "" {
		res := h.repo.Search(ctx, term)
		if !res.IsOK() {
			c.JSON(http.StatusInternalServerError, res)
			return
		}
		c.JSON(http.StatusOK, res)
		return
	}

	if city := c.Query("city"); city != "" {
		res := h.repo.GetByCity(ctx, city)
		if !res.IsOK() {
			c.JSON(http.StatusInternalServerError, res)
			return
		}
		c.JSON(http.StatusOK, res)
		return
	}

	page, limit := pageParams(c)
	res := h.repo.GetAll(ctx, page, limit, db.ProducerFilter{Status: c.Query("status")})
	if !res.IsOK() {
		c.JSON(http.StatusInternalServerError, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create registers a producer and answers with the bare document.
func (h *ProducerHandler) Create(c *gin.Context) {
	var in models.CreateProducer
	if !bindJSON(c, &in) {
		return
	}
	res := h.repo.Create(c.Request.Context(), in)
	p, ok := res.Value()
	if !ok {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Get returns the bare producer document.
func (h *ProducerHandler) Get(c *gin.Context) {
	res := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	p, ok := res.Value()
	if !ok {
		errorJSON(c, http.StatusNotFound, res.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update applies a partial update.
func (h *ProducerHandler) Update(c *gin.Context) {
	var in models.UpdateProducer
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

// Delete removes a producer.
func (h *ProducerHandler) Delete(c *gin.Context) {
	res := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if !res.IsOK() {
		errorJSON(c, http.StatusNotFound, res.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": res.Message()})
}
