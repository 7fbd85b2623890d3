package router

import (
	"Saut_Review/internal/config"
	"Saut_Review/internal/handler"
	"Saut_Review/internal/middleware"
	"Saut_Review/internal/pkg"
	"Saut_Review/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	emailCfg := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
	emailSvc := service.NewEmailService(emailCfg)

	user := handler.NewUserHandler(emailSvc)
	email := handler.NewEmailHandler(emailSvc)
	recitation := handler.NewRecitationHandler()
	comment := handler.NewCommentHandler()
	marker := handler.NewMarkerHandler()
	community := handler.NewCommunityHandler()
	donation := handler.NewDonationHandler()
	feedback := handler.NewFeedbackHandler()

	// 邮件相关接口
	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/:scope/code", email.SendCode)
	}

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态接口
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
		authGroup.GET("/me", user.Me)
	}

	// 用户管理接口（仅管理员，鉴权在 service 层）
	usersGroup := r.Group("/api/users")
	usersGroup.Use(middleware.AuthMiddleware())
	{
		usersGroup.GET("", user.List)
		usersGroup.GET("/:id", user.Get)
		usersGroup.PATCH("/:id", user.Update)
	}

	// 诵读相关接口
	recitationGroup := r.Group("/api/recitations")
	recitationGroup.Use(middleware.AuthMiddleware())
	{
		recitationGroup.POST("", recitation.Create)
		recitationGroup.GET("/mine", recitation.ListMine)
		recitationGroup.GET("/pending", recitation.ListPending)
		recitationGroup.GET("/:id", recitation.Get)
		recitationGroup.PATCH("/:id", recitation.Update)
		recitationGroup.GET("/:id/comments", comment.ListForRecitation)
		recitationGroup.GET("/:id/markers", marker.ListForRecitation)
		recitationGroup.GET("/:id/loops", marker.ListLoopsForRecitation)
	}

	// 点评相关接口
	commentGroup := r.Group("/api/comments")
	commentGroup.Use(middleware.AuthMiddleware())
	{
		commentGroup.POST("", comment.Create)
		commentGroup.GET("/mine", comment.ListMine)
		commentGroup.PATCH("/:id", comment.Update)
		commentGroup.DELETE("/:id", comment.Delete)
	}

	// 时间轴标记接口
	markerGroup := r.Group("/api/markers")
	markerGroup.Use(middleware.AuthMiddleware())
	{
		markerGroup.POST("", marker.Create)
		markerGroup.PATCH("/:id", marker.Update)
		markerGroup.DELETE("/:id", marker.Delete)
	}

	// 循环区间接口
	loopGroup := r.Group("/api/loops")
	loopGroup.Use(middleware.AuthMiddleware())
	{
		loopGroup.POST("", marker.CreateLoop)
		loopGroup.PATCH("/:id", marker.UpdateLoop)
		loopGroup.DELETE("/:id", marker.DeleteLoop)
	}

	// 社区相关接口
	communityGroup := r.Group("/api/community")
	communityGroup.Use(middleware.AuthMiddleware())
	{
		communityGroup.POST("/create", community.Create)
		communityGroup.GET("/list", community.List)
		communityGroup.GET("/mine", community.ListMine)
		communityGroup.GET("/:id", community.Get)
		communityGroup.PATCH("/:id", community.Update)
		communityGroup.POST("/:id/join", community.Join)
		communityGroup.POST("/:id/leave", community.Leave)
		communityGroup.GET("/:id/stats", community.Stats)
	}

	// 捐赠相关接口：发起允许匿名，带 token 则归属到账号
	donationGroup := r.Group("/api/donations")
	{
		donationGroup.POST("", middleware.OptionalAuthMiddleware(), donation.Initiate)
		donationGroup.GET("/public", donation.ListPublic)
		donationGroup.GET("/stats", donation.Stats)
		donationGroup.GET("/campaigns", donation.ListCampaigns)
		donationGroup.GET("/mine", middleware.AuthMiddleware(), donation.ListMine)
		donationGroup.PATCH("/:id", middleware.AuthMiddleware(), donation.Update)
		donationGroup.POST("/campaigns", middleware.AuthMiddleware(), donation.CreateCampaign)
	}

	// 反馈相关接口：提交允许匿名
	feedbackGroup := r.Group("/api/feedback")
	{
		feedbackGroup.POST("", middleware.OptionalAuthMiddleware(), feedback.Create)
		feedbackGroup.GET("", middleware.AuthMiddleware(), feedback.List)
		feedbackGroup.GET("/stats", middleware.AuthMiddleware(), feedback.Stats)
		feedbackGroup.GET("/:id", middleware.AuthMiddleware(), feedback.Get)
		feedbackGroup.PATCH("/:id", middleware.AuthMiddleware(), feedback.Update)
		feedbackGroup.DELETE("/:id", middleware.AuthMiddleware(), feedback.Delete)
	}

	return r
}
