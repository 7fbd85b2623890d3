package main

import (
	"context"
	"log"

	"Saut_Review/internal/config"
	"Saut_Review/internal/model"
	"Saut_Review/internal/pkg"
	"Saut_Review/internal/repository/mysql"
	"Saut_Review/internal/repository/redis"
	"Saut_Review/internal/router"
	"Saut_Review/internal/service"
)

func main() {
	cfg := config.Load()
	pkg.SetSecrets(cfg.AccessSecret, cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Recitation{},
		&model.Comment{},
		&model.Marker{},
		&model.LoopRegion{},
		&model.Community{},
		&model.CommunityMembership{},
		&model.Donation{},
		&model.DonationCampaign{},
		&model.UserFeedback{},
		&model.ReviewOutbox{},
	)

	// outbox 投递：kafka 不可用时退化为日志输出
	sender := service.LogSender
	producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
	if err != nil {
		log.Printf("kafka unavailable, outbox events go to log: %v", err)
	} else {
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	go service.NewOutboxRelayer(sender).Run(context.Background())

	// Gin
	r := router.InitRouter(cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		return
	}
}
