package handler

import (
	"net/http"

	"Saut_Review/internal/middleware"
	"Saut_Review/internal/repository/mysql"
	"Saut_Review/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	svc *service.FeedbackService
}

func NewFeedbackHandler() *FeedbackHandler {
	return &FeedbackHandler{svc: service.NewFeedbackService()}
}

// Create 提交反馈，匿名也可以
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req service.FeedbackCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	f, err := h.svc.Create(middleware.ActorFromCtx(c), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": f})
}

// List 管理员看全部，普通用户只看自己的
func (h *FeedbackHandler) List(c *gin.Context) {
	page, size := pageQuery(c)
	filter := mysql.FeedbackFilter{
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	list, err := h.svc.List(middleware.ActorFromCtx(c), filter, page, size)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *FeedbackHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	f, err := h.svc.Get(middleware.ActorFromCtx(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": f})
}

// Update 管理员任意字段；提交者仅 open 状态下改标题/描述
func (h *FeedbackHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.FeedbackUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	f, err := h.svc.Update(middleware.ActorFromCtx(c), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": f})
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
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

// Stats 仅管理员
func (h *FeedbackHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(middleware.ActorFromCtx(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
