package handler

import (
	"net/http"

	"Saut_Review/internal/middleware"
	"Saut_Review/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

func NewCommunityHandler() *CommunityHandler {
	return &CommunityHandler{svc: service.NewCommunityService()}
}

// Create 学者/管理员建社区
func (h *CommunityHandler) Create(c *gin.Context) {
	var req service.CommunityCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	community, err := h.svc.Create(middleware.ActorFromCtx(c), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": community})
}

// List 活跃社区列表，可按名称/描述/位置模糊搜
func (h *CommunityHandler) List(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.svc.List(c.Query("search"), page, size)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

// ListMine 自己加入的社区
func (h *CommunityHandler) ListMine(c *gin.Context) {
	list, err := h.svc.ListMine(middleware.ActorFromCtx(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *CommunityHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.svc.Get(middleware.ActorFromCtx(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

// Update 平台管理员或社区管理员成员
func (h *CommunityHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.CommunityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	community, err := h.svc.Update(middleware.ActorFromCtx(c), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": community})
}

func (h *CommunityHandler) Join(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Join(c.Request.Context(), middleware.ActorFromCtx(c), id); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "joined"})
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Leave(c.Request.Context(), middleware.ActorFromCtx(c), id); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "left"})
}

// Stats 成员或平台管理员可看
func (h *CommunityHandler) Stats(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	stats, err := h.svc.Stats(middleware.ActorFromCtx(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
