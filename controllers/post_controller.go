package controllers

import (
	"net/http"

	"inkwell/models"
	"inkwell/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	postService *services.PostService
	hubService  *services.HubService
}

func NewPostController(db *gorm.DB, hubService *services.HubService) *PostController {
	return &PostController{
		postService: services.NewPostService(db),
		hubService:  hubService,
	}
}

// Index lists published posts (plus the viewer's drafts when
// authenticated), optionally filtered by ?search=.
func (pc *PostController) Index(c *gin.Context) {
	posts, pagination, err := pc.postService.List(viewerID(c), c.Query("search"), pageParam(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       posts,
		"pagination": pagination,
	})
}

func (pc *PostController) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := pc.postService.Get(id, viewerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

func (pc *PostController) Create(c *gin.Context) {
	userID, _ := currentUserID(c)

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}

	post, err := pc.postService.Create(userID, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if post.IsPublished {
		pc.hubService.BroadcastEvent("post_published", post)
	}

	c.JSON(http.StatusCreated, gin.H{"data": post})
}

func (pc *PostController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, _ := currentUserID(c)

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}

	post, becamePublished, err := pc.postService.Update(id, userID, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if becamePublished {
		pc.hubService.BroadcastEvent("post_published", post)
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

func (pc *PostController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, _ := currentUserID(c)

	if err := pc.postService.Delete(id, userID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
