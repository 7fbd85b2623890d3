package handler

import (
	"net/http"

	"Saut_Review/internal/middleware"
	"Saut_Review/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{svc: service.NewCommentService()}
}

// Create 学者/管理员对诵读某一时间点的点评
func (h *CommentHandler) Create(c *gin.Context) {
	var req service.CommentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	comment, err := h.svc.Create(middleware.ActorFromCtx(c), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comment})
}

// ListForRecitation 某条诵读下的全部点评
func (h *CommentHandler) ListForRecitation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	list, err := h.svc.ListForRecitation(middleware.ActorFromCtx(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

// ListMine 指向自己诵读的点评
func (h *CommentHandler) ListMine(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.svc.ListMine(middleware.ActorFromCtx(c), page, size)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

// Update 作者或管理员可改
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.CommentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	comment, err := h.svc.Update(middleware.ActorFromCtx(c), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(middleware.ActorFromCtx(c), id); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
