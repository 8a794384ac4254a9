package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aescanero/dago-node-spintax/internal/config"
	"github.com/aescanero/dago-node-spintax/internal/content"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StreamClient is the subset of the Redis client the worker reads with
type StreamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
}

// EventBus publishes worker output to a topic
type EventBus interface {
	Publish(ctx context.Context, topic string, payload interface{}) error
}

// ResultStore keeps the latest rendered result of each page
type ResultStore interface {
	Save(ctx context.Context, key string, result *content.RenderResult, ttl time.Duration) error
}

// Worker represents the content worker
type Worker struct {
	id            string
	config        *config.Config
	client        StreamClient
	renderer      *content.Renderer
	eventBus      EventBus
	resultStore   ResultStore
	logger        *zap.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	done          chan struct{}
	streamKey     string
	consumerGroup string
	resultStream  string
}

// NewWorker creates a new worker
func NewWorker(
	cfg *config.Config,
	client StreamClient,
	renderer *content.Renderer,
	eventBus EventBus,
	resultStore ResultStore,
	logger *zap.Logger,
) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	return &Worker{
		id:            cfg.WorkerID,
		config:        cfg,
		client:        client,
		renderer:      renderer,
		eventBus:      eventBus,
		resultStore:   resultStore,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
		streamKey:     cfg.StreamKey,
		consumerGroup: cfg.ConsumerGroup,
		resultStream:  cfg.ResultStream,
	}
}

// Start starts the worker
func (w *Worker) Start() error {
	w.logger.Info("starting content worker",
		zap.String("worker_id", w.id),
		zap.String("stream_key", w.streamKey),
		zap.String("consumer_group", w.consumerGroup),
	)

	if err := w.ensureConsumerGroup(); err != nil {
		return fmt.Errorf("failed to ensure consumer group: %w", err)
	}

	go w.processWork()

	w.logger.Info("content worker started", zap.String("worker_id", w.id))
	return nil
}

// Stop stops the worker and waits for the in-flight message, up to timeout
func (w *Worker) Stop(timeout time.Duration) error {
	w.logger.Info("stopping content worker", zap.String("worker_id", w.id))

	w.cancel()

	select {
	case <-w.done:
	case <-time.After(timeout):
		return fmt.Errorf("worker %s did not stop within %s", w.id, timeout)
	}

	w.logger.Info("content worker stopped", zap.String("worker_id", w.id))
	return nil
}

// ensureConsumerGroup creates the consumer group if it doesn't exist
func (w *Worker) ensureConsumerGroup() error {
	err := w.client.XGroupCreateMkStream(w.ctx, w.streamKey, w.consumerGroup, "0").Err()
	if err != nil {
		// BUSYGROUP means the group already exists, which is fine
		if strings.HasPrefix(err.Error(), "BUSYGROUP") {
			w.logger.Debug("consumer group already exists",
				zap.String("group", w.consumerGroup),
			)
			return nil
		}
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	w.logger.Info("created consumer group",
		zap.String("group", w.consumerGroup),
		zap.String("stream", w.streamKey),
	)
	return nil
}

// processWork processes work from the Redis stream
func (w *Worker) processWork() {
	defer close(w.done)
	w.logger.Info("starting work processing loop")

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info("work processing loop stopped")
			return
		default:
			streams, err := w.client.XReadGroup(w.ctx, &redis.XReadGroupArgs{
				Group:    w.consumerGroup,
				Consumer: w.id,
				Streams:  []string{w.streamKey, ">"},
				Count:    1,
				Block:    w.config.BlockTime,
			}).Result()

			if err != nil {
				if errors.Is(err, redis.Nil) || w.ctx.Err() != nil {
					continue
				}
				w.logger.Error("failed to read from stream",
					zap.Error(err),
				)
				w.pause(time.Second)
				continue
			}

			for _, stream := range streams {
				for _, message := range stream.Messages {
					w.handleMessage(message)
				}
			}
		}
	}
}

// pause sleeps for d or until the worker is stopped
func (w *Worker) pause(d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-w.ctx.Done():
	case <-t.C:
	}
}

// handleMessage handles a single render request message
func (w *Worker) handleMessage(message redis.XMessage) {
	messageID := message.ID
	w.logger.Info("processing render request",
		zap.String("message_id", messageID),
	)

	request, err := parseRenderRequest(message.Values)
	if err != nil {
		w.logger.Error("failed to parse render request",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
		w.acknowledgeMessage(messageID)
		return
	}

	if err := w.processRenderRequest(w.ctx, request); err != nil {
		w.logger.Error("failed to process render request",
			zap.String("message_id", messageID),
			zap.String("request_id", request.RequestID),
			zap.String("domain", request.Domain),
			zap.Error(err),
		)
		w.publishError(request, err)
	}

	w.acknowledgeMessage(messageID)
}

// parseRenderRequest parses a render request from a Redis message
func parseRenderRequest(values map[string]interface{}) (*content.RenderRequest, error) {
	dataStr, ok := values["data"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var request content.RenderRequest
	if err := json.Unmarshal([]byte(dataStr), &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal render request: %w", err)
	}

	if request.RequestID == "" {
		request.RequestID = uuid.NewString()
	}

	return &request, nil
}

// processRenderRequest renders a request, stores the result and publishes it
func (w *Worker) processRenderRequest(ctx context.Context, request *content.RenderRequest) error {
	result, err := w.renderer.Render(ctx, request)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := w.resultStore.Save(ctx, w.resultKey(request), result, w.config.ResultTTL); err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}

	if err := w.eventBus.Publish(ctx, w.resultStream, result); err != nil {
		return fmt.Errorf("failed to publish result: %w", err)
	}

	w.logger.Info("published rendered page",
		zap.String("request_id", request.RequestID),
		zap.String("domain", request.Domain),
		zap.String("page", request.Page),
	)

	return nil
}

// resultKey returns the storage key of a page's result
func (w *Worker) resultKey(request *content.RenderRequest) string {
	return w.config.ResultKeyPrefix + request.Domain + ":" + request.Page
}

// ErrorEvent is published when a request cannot be rendered
type ErrorEvent struct {
	RequestID string    `json:"request_id"`
	Domain    string    `json:"domain"`
	Page      string    `json:"page,omitempty"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// publishError publishes an error event
func (w *Worker) publishError(request *content.RenderRequest, err error) {
	event := ErrorEvent{
		RequestID: request.RequestID,
		Domain:    request.Domain,
		Page:      request.Page,
		Error:     err.Error(),
		Timestamp: time.Now().UTC(),
	}

	if publishErr := w.eventBus.Publish(w.ctx, w.resultStream+".errors", event); publishErr != nil {
		w.logger.Error("failed to publish error event", zap.Error(publishErr))
	}
}

// acknowledgeMessage acknowledges a message from the stream
func (w *Worker) acknowledgeMessage(messageID string) {
	err := w.client.XAck(w.ctx, w.streamKey, w.consumerGroup, messageID).Err()
	if err != nil {
		w.logger.Error("failed to acknowledge message",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
	}
}
