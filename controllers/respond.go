package controllers

import (
	"net/http"
	"strconv"

	"inkwell/apperror"
	"inkwell/middleware"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, err error) {
	status, message := apperror.Status(err)
	c.JSON(status, gin.H{"message": message})
}

func abortBinding(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// viewerID returns a pointer to the authenticated user's ID, or nil for
// anonymous requests. Services take the pointer form on read paths where
// authentication is optional.
func viewerID(c *gin.Context) *uint {
	if id, ok := currentUserID(c); ok {
		return &id
	}
	return nil
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
