package publisher

import (
	"context"
	"encoding/base64"
	"strconv"

	"math/rand"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher implements Publisher using Redis streams
type RedisPublisher struct {
	client          *redis.Client
	ctx             context.Context
	streamPrefix    string
	streamCount     int
	streamMaxLength int
}

// NewRedisPublisher creates a new Redis publisher
func NewRedisPublisher(ctx context.Context, addr string, db int, streamPrefix string, streamCount int, streamMaxLength int) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	return &RedisPublisher{
		client:          client,
		ctx:             ctx,
		streamPrefix:    streamPrefix,
		streamCount:     streamCount,
		streamMaxLength: streamMaxLength,
	}
}

// Publish appends one base64-encoded listing to a stream. The stream is
// picked at random from streamPrefix:0 .. streamPrefix:{count-1} so consumers
// can shard by stream name.
func (p *RedisPublisher) Publish(source string, payload []byte) error {
	encoded := base64.StdEncoding.EncodeToString(payload)

	stream := p.streamPrefix + ":" + strconv.Itoa(rand.Intn(p.streamCount))

	return p.client.XAdd(p.ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: int64(p.streamMaxLength),
		Approx: true,
		Values: map[string]interface{}{
			source: encoded,
		},
	}).Err()
}

// TrimStreams trims all streams to the configured maximum length
func (p *RedisPublisher) TrimStreams() error {
	pattern := p.streamPrefix + ":*"
	streams, err := p.client.Keys(p.ctx, pattern).Result()
	if err != nil {
		return err
	}

	for _, stream := range streams {
		err := p.client.XTrimMaxLen(p.ctx, stream, int64(p.streamMaxLength)).Err()
		if err != nil {
			return err
		}
	}

	return nil
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
