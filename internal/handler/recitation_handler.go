package handler

import (
	"net/http"

	"Saut_Review/internal/middleware"
	"Saut_Review/internal/service"

	"github.com/gin-gonic/gin"
)

type RecitationHandler struct {
	svc *service.RecitationService
}

func NewRecitationHandler() *RecitationHandler {
	return &RecitationHandler{svc: service.NewRecitationService()}
}

// Create 提交一段诵读
func (h *RecitationHandler) Create(c *gin.Context) {
	var req service.RecitationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	rec, err := h.svc.Create(middleware.ActorFromCtx(c), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rec})
}

// ListMine 自己的诵读列表
func (h *RecitationHandler) ListMine(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.svc.ListMine(middleware.ActorFromCtx(c), page, size)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

// ListPending 待审队列，学者/管理员可见
func (h *RecitationHandler) ListPending(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.svc.ListPending(middleware.ActorFromCtx(c), page, size)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *RecitationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rec, err := h.svc.Get(middleware.ActorFromCtx(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rec})
}

// Update 审阅改状态，仅学者/管理员
func (h *RecitationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.RecitationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	rec, err := h.svc.Update(middleware.ActorFromCtx(c), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rec})
}
