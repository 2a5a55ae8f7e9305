package controllers

import (
	"net/http"

	"inkwell/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	userService *services.UserService
	postService *services.PostService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService: services.NewUserService(db),
		postService: services.NewPostService(db),
	}
}

func (uc *UserController) Profile(c *gin.Context) {
	userID, _ := currentUserID(c)

	profile, err := uc.userService.Profile(userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// Posts lists the caller's own posts, drafts included.
func (uc *UserController) Posts(c *gin.Context) {
	userID, _ := currentUserID(c)

	posts, pagination, err := uc.postService.ForUser(userID, pageParam(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       posts,
		"pagination": pagination,
	})
}

func (uc *UserController) Drafts(c *gin.Context) {
	userID, _ := currentUserID(c)

	posts, pagination, err := uc.postService.DraftsForUser(userID, pageParam(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       posts,
		"pagination": pagination,
	})
}
