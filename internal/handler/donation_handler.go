package handler

import (
	"net/http"

	"Saut_Review/internal/middleware"
	"Saut_Review/internal/service"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	svc *service.DonationService
}

func NewDonationHandler() *DonationHandler {
	return &DonationHandler{svc: service.NewDonationService()}
}

// Initiate 发起捐赠，匿名也可以；返回支付跳转信息
func (h *DonationHandler) Initiate(c *gin.Context) {
	var req service.DonationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	intent, err := h.svc.Initiate(middleware.ActorFromCtx(c), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": intent})
}

// ListMine 自己的捐赠记录，可按状态过滤
func (h *DonationHandler) ListMine(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.svc.ListMine(middleware.ActorFromCtx(c), c.Query("status"), page, size)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

// ListPublic 公开的非匿名已完成捐赠
func (h *DonationHandler) ListPublic(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.svc.ListPublic(page, size)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *DonationHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// Update 管理员改捐赠状态
func (h *DonationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.DonationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	d, err := h.svc.Update(middleware.ActorFromCtx(c), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": d})
}

// CreateCampaign 管理员建募捐活动
func (h *DonationHandler) CreateCampaign(c *gin.Context) {
	var req service.CampaignCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	campaign, err := h.svc.CreateCampaign(middleware.ActorFromCtx(c), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": campaign})
}

func (h *DonationHandler) ListCampaigns(c *gin.Context) {
	page, size := pageQuery(c)
	activeOnly := c.Query("active_only") != "false"
	list, err := h.svc.ListCampaigns(activeOnly, page, size)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": list})
}
