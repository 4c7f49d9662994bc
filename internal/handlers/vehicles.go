package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ukydev/wastefleet/internal/db"
	"github.com/ukydev/wastefleet/internal/models"
)

// VehicleHandler serves /api/vehicles.
type VehicleHandler struct {
	repo db.VehicleRepo
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(repo db.VehicleRepo) *VehicleHandler {
	return &VehicleHandler{repo: repo}
}

// Register mounts the vehicle routes on rg.
func (h *VehicleHandler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/vehicles")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/active", h.Active)
	g.GET("/by-vehicle-id/:vehicleId", h.GetByVehicleID)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns a page of vehicles. Unknown status values are ignored.
func (h *VehicleHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	var filter db.VehicleFilter
	if status := c.Query("status"); models.IsValidVehicleStatus(status) {
		filter.Status = models.VehicleStatus(status)
	}

	res := h.repo.GetAll(c.Request.Context(), page, limit, filter)
	if !res.IsOK() {
		c.JSON(http.StatusInternalServerError, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create registers a vehicle.
func (h *VehicleHandler) Create(c *gin.Context) {
	var in models.CreateVehicle
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

// Active lists vehicles whose status is active.
func (h *VehicleHandler) Active(c *gin.Context) {
	res := h.repo.GetActive(c.Request.Context())
	if !res.IsOK() {
		c.JSON(http.StatusInternalServerError, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetByVehicleID looks a vehicle up by its plate.
func (h *VehicleHandler) GetByVehicleID(c *gin.Context) {
	res := h.repo.GetByVehicleID(c.Request.Context(), c.Param("vehicleId"))
	v, ok := res.Value()
	if !ok {
		errorJSON(c, http.StatusNotFound, res.Error())
		return
	}
	c.JSON(http.StatusOK, v)
}

// Get returns the bare vehicle document.
func (h *VehicleHandler) Get(c *gin.Context) {
	res := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	v, ok := res.Value()
	if !ok {
		errorJSON(c, http.StatusNotFound, res.Error())
		return
	}
	c.JSON(http.StatusOK, v)
}

// Update applies a partial update.
func (h *VehicleHandler) Update(c *gin.Context) {
	var in models.UpdateVehicle
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

// Delete removes a vehicle.
func (h *VehicleHandler) Delete(c *gin.Context) {
	res := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if !res.IsOK() {
		errorJSON(c, http.StatusNotFound, res.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": res.Message()})
}
