package bootstrap

import (
	"context"
	"log"
	"time"

	"microlearn-agent-be/internal/config"
	"microlearn-agent-be/internal/controller"
	"microlearn-agent-be/internal/handler"
	"microlearn-agent-be/internal/pkg/logger"
	"microlearn-agent-be/internal/repository/memory"
	"microlearn-agent-be/internal/repository/unitofwork"
	"microlearn-agent-be/internal/service"
	"microlearn-agent-be/internal/websocket"
	"microlearn-agent-be/pkg/agent/followup"
	"microlearn-agent-be/pkg/analytics"
	"microlearn-agent-be/pkg/events"

	pktNats "microlearn-agent-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AgentController    controller.IAgentController
	AgentSocketHandler *handler.AgentSocketHandler

	// Background Services (started by Start)
	ConsumerService service.IConsumerService
	WebSocketHub    *websocket.Hub

	Logger logger.ILogger

	scheduler *followup.Scheduler
	pubSub    *gochannel.GoChannel
	natsPub   *pktNats.Publisher
	rdb       *redis.Client
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	socketLogger := logger.NewIsolatedLogger(cfg.App.SocketLogFilePath)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewStdLogger(false, false),
	)

	// 3. Infrastructure
	var eventPublisher events.Publisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := natsPub.EnsureStream(ctx); err != nil {
			log.Printf("[WARN] %v", err)
		}
		cancel()
		eventPublisher = natsPub
	}

	rdb := newRedisClient(cfg.App.RedisURL)

	wsHub := websocket.NewHub(rdb, socketLogger)

	// 4. Services
	conversationRepo := memory.NewConversationRepository(cfg.Agent.ConversationTTL)
	scheduler := followup.NewScheduler()

	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EventTopic,
		uowFactory,
		eventPublisher,
		sysLogger,
	)

	agentService := service.NewAgentService(
		conversationRepo,
		scheduler,
		analytics.MultiSink{
			service.NewBusEventSink(publisherService),
			service.NewLogEventSink(sysLogger),
		},
		service.NewMessageMirror(uowFactory, sysLogger),
		wsHub, // Hub implements MessageDelivery
		sysLogger,
		cfg.Agent.FollowUpsEnabled,
	)

	// 5. Controllers
	return &Container{
		AgentController:    controller.NewAgentController(agentService, service.NewInsightService(uowFactory), cfg.Auth.JwtSecret),
		AgentSocketHandler: handler.NewAgentSocketHandler(wsHub, cfg.Auth.JwtSecret, socketLogger),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,

		scheduler: scheduler,
		pubSub:    pubSub,
		natsPub:   natsPub,
		rdb:       rdb,
	}
}

func newRedisClient(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: url,
		}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Follow-ups reach this instance's sockets only", err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// Start launches the hub and the interaction log consumer. Both stop when ctx
// is cancelled.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)
	return c.ConsumerService.Consume(ctx)
}

// Shutdown stops pending follow-ups and releases connections.
func (c *Container) Shutdown() {
	c.scheduler.Shutdown()

	if err := c.pubSub.Close(); err != nil {
		c.Logger.Warn("Container", "Failed to close event bus", map[string]interface{}{"error": err.Error()})
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
	_ = c.Logger.Sync()
}
