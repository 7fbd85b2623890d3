package handler

import (
	"net/http"

	"Saut_Review/internal/middleware"
	"Saut_Review/internal/service"

	"github.com/gin-gonic/gin"
)

// MarkerHandler 时间轴标记与循环区间共用一个 service
type MarkerHandler struct {
	svc *service.MarkerService
}

func NewMarkerHandler() *MarkerHandler {
	return &MarkerHandler{svc: service.NewMarkerService()}
}

func (h *MarkerHandler) Create(c *gin.Context) {
	var req service.MarkerCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	m, err := h.svc.Create(middleware.ActorFromCtx(c), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": m})
}

func (h *MarkerHandler) ListForRecitation(c *gin.Context) {
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

func (h *MarkerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.MarkerUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	m, err := h.svc.Update(middleware.ActorFromCtx(c), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": m})
}

func (h *MarkerHandler) Delete(c *gin.Context) {
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

func (h *MarkerHandler) CreateLoop(c *gin.Context) {
	var req service.LoopRegionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	l, err := h.svc.CreateLoop(middleware.ActorFromCtx(c), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": l})
}

func (h *MarkerHandler) ListLoopsForRecitation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	list, err := h.svc.ListLoopsForRecitation(middleware.ActorFromCtx(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

// UpdateLoop 区间两端按生效值校验 start<end
func (h *MarkerHandler) UpdateLoop(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.LoopRegionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	l, err := h.svc.UpdateLoop(middleware.ActorFromCtx(c), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": l})
}

func (h *MarkerHandler) DeleteLoop(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteLoop(middleware.ActorFromCtx(c), id); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
