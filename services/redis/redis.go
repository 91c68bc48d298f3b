package redis

import (
	redis_models "Playroom/models/redis"
	redis_utils "Playroom/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	game_constants "Playroom/constants/game"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations. Everything stored here is ephemeral
// and TTL'd: chat history replay and presence. Game state never touches
// Redis, sessions live in memory only.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(addr string, db int) *RedisClient {
	var client *redis.Client
	if addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// PushChatMessage appends a message to the capped global chat history.
// Key: "chat:history", newest first, trimmed to ChatHistoryLimit entries.
func (rc *RedisClient) PushChatMessage(msg *redis_models.ChatMessage) error {
	key := redis_utils.FormatChatHistoryKey()
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal chat message: %v", err)
	}
	pipe := rc.client.Pipeline()
	pipe.LPush(rc.ctx, key, data)
	pipe.LTrim(rc.ctx, key, 0, int64(game_constants.ChatHistoryLimit-1))
	pipe.Expire(rc.ctx, key, game_constants.ChatHistoryTTL)
	if _, err := pipe.Exec(rc.ctx); err != nil {
		return fmt.Errorf("failed to push chat message: %v", err)
	}
	return nil
}

// RecentChatMessages returns the stored history, oldest first, ready to be
// replayed to a joining client.
func (rc *RedisClient) RecentChatMessages() ([]redis_models.ChatMessage, error) {
	key := redis_utils.FormatChatHistoryKey()
	raw, err := rc.client.LRange(rc.ctx, key, 0, int64(game_constants.ChatHistoryLimit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %v", err)
	}
	messages := make([]redis_models.ChatMessage, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var msg redis_models.ChatMessage
		if err := json.Unmarshal([]byte(raw[i]), &msg); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// SetPresence marks a player online (or playing) with a short TTL.
func (rc *RedisClient) SetPresence(username string, status redis_models.PlayerStatus) error {
	presence := &redis_models.PlayerPresence{
		Username: username,
		Status:   status,
		LastPing: time.Now().Unix(),
	}
	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("failed to marshal presence: %v", err)
	}
	key := redis_utils.FormatPresenceKey(username)
	if err := rc.client.Set(rc.ctx, key, data, game_constants.PresenceTTL).Err(); err != nil {
		return fmt.Errorf("failed to set presence for %s: %v", username, err)
	}
	return nil
}

// ClearPresence removes a player's presence key on disconnect.
func (rc *RedisClient) ClearPresence(username string) error {
	key := redis_utils.FormatPresenceKey(username)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear presence for %s: %v", username, err)
	}
	return nil
}

// CleanupKeys removes the specified keys from Redis
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
