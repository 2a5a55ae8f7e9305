package controllers

import (
	"net/http"

	"inkwell/models"
	"inkwell/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	commentService *services.CommentService
	hubService     *services.HubService
}

func NewCommentController(db *gorm.DB, hubService *services.HubService) *CommentController {
	return &CommentController{
		commentService: services.NewCommentService(db),
		hubService:     hubService,
	}
}

// Index lists a post's top-level comments with their replies.
func (cc *CommentController) Index(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}

	comments, err := cc.commentService.ListForPost(postID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comments})
}

func (cc *CommentController) Create(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	userID, _ := currentUserID(c)

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}

	comment, err := cc.commentService.Create(userID, postID, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	cc.hubService.BroadcastEvent("comment_created", comment)

	c.JSON(http.StatusCreated, gin.H{"data": comment})
}

func (cc *CommentController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, _ := currentUserID(c)

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}

	comment, err := cc.commentService.Update(id, userID, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comment})
}

func (cc *CommentController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, _ := currentUserID(c)

	if err := cc.commentService.Delete(id, userID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
