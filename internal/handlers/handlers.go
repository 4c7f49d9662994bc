// Package handlers exposes the repositories over HTTP.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

const invalidJSON = "Invalid JSON data"

// pageParams reads page and limit, falling back to the defaults when a value
// is missing or not an integer.
func pageParams(c *gin.Context) (page, limit int64) {
	return queryInt(c, "page", defaultPage), queryInt(c, "limit", defaultLimit)
}

func queryInt(c *gin.Context, key string, def int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// bindJSON decodes the request body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidJSON})
		return false
	}
	return true
}

func errorJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
