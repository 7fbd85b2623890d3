package service

import (
	"context"
	"log"
	"time"

	"Saut_Review/internal/model"
	"Saut_Review/internal/pkg"
	"Saut_Review/internal/repository/mysql"
)

type Sender func(ctx context.Context, ob *model.ReviewOutbox) error

// OutboxRelayer 定时把 review_outbox 里的 pending 事件投给 kafka
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: mysql.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkRetry(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 事件按 subject 分区投递
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.ReviewOutbox) error {
		key := pkg.MakeKeyFromID(ob.SubjectID)
		return producer.SendEvent(ctx, ob.EventType, key, []byte(ob.Payload))
	}
}

// LogSender 本地调试用，只打日志
func LogSender(ctx context.Context, ob *model.ReviewOutbox) error {
	log.Printf("OUTBOX SEND type=%s actor=%d subject=%d payload=%s",
		ob.EventType, ob.ActorID, ob.SubjectID, ob.Payload)
	return nil
}
