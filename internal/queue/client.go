package queue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dujiao-next/estore/internal/config"

	"github.com/hibiken/asynq"
)

// DefaultQueue 默认队列名称
const DefaultQueue = "default"

// Client 队列客户端封装，未启用时入队为空操作
type Client struct {
	client   *asynq.Client
	enabled  bool
	queue    string
	maxRetry int
	timeout  time.Duration
}

// ClientOptions 订单通知任务的投递参数
type ClientOptions struct {
	Queue          string
	MaxRetry       int
	TimeoutSeconds int
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig, opts ClientOptions) (*Client, error) {
	c := &Client{queue: DefaultQueue, maxRetry: 5, timeout: 30 * time.Second}
	if q := strings.TrimSpace(opts.Queue); q != "" {
		c.queue = q
	}
	if opts.MaxRetry > 0 {
		c.maxRetry = opts.MaxRetry
	}
	if opts.TimeoutSeconds > 0 {
		c.timeout = time.Duration(opts.TimeoutSeconds) * time.Second
	}
	if cfg == nil || !cfg.Enabled {
		return c, nil
	}
	c.client = asynq.NewClient(buildRedisOpt(cfg))
	c.enabled = true
	return c, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueOrderPlaced 推送下单通知任务
func (c *Client) EnqueueOrderPlaced(ctx context.Context, payload OrderPlacedPayload) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewOrderPlacedTask(payload)
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(c.queue),
		asynq.MaxRetry(c.maxRetry),
		asynq.Timeout(c.timeout),
	)
	return err
}

// BuildServerConfig 生成队列服务配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	concurrency := 10
	queues := map[string]int{DefaultQueue: 1}
	if cfg != nil {
		if cfg.Concurrency > 0 {
			concurrency = cfg.Concurrency
		}
		if len(cfg.Queues) > 0 {
			queues = cfg.Queues
		}
	}
	return buildRedisOpt(cfg), asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host, port := "127.0.0.1", 6379
	opt := asynq.RedisClientOpt{}
	if cfg != nil {
		if h := strings.TrimSpace(cfg.Host); h != "" {
			host = h
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		opt.Password = cfg.Password
		opt.DB = cfg.DB
	}
	opt.Addr = fmt.Sprintf("%s:%d", host, port)
	return opt
}
