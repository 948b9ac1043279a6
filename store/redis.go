// Package store provides persistent KnowledgeStore backends for the
// character engine: Redis for shared deployments, SQLite for single-node
// file persistence. The engine's default in-memory store lives in the
// root package.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	charengine "github.com/chessmates/character-engine-go"
)

// RedisKnowledgeStore implements charengine.KnowledgeStore on Redis.
// Facts are kept in one list per topic ("{prefix}:{topic}"), trimmed to
// the newest MaxFacts entries; topic names live in a set ("{prefix}:topics").
type RedisKnowledgeStore struct {
	client   redis.UniversalClient
	prefix   string
	maxFacts int64
	ttl      time.Duration
	ctx      context.Context
}

// RedisConfig configures the store.
type RedisConfig struct {
	Prefix   string        // key prefix, default "knowledge"
	MaxFacts int64         // per-topic bound, default charengine.DefaultMaxFactsPerTopic
	TTL      time.Duration // optional expiry for topic lists, 0 = no expiry
}

// NewRedisKnowledgeStore creates a store over an existing client.
func NewRedisKnowledgeStore(client redis.UniversalClient, config ...RedisConfig) *RedisKnowledgeStore {
	cfg := RedisConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "knowledge"
	}
	if cfg.MaxFacts <= 0 {
		cfg.MaxFacts = charengine.DefaultMaxFactsPerTopic
	}
	return &RedisKnowledgeStore{
		client:   client,
		prefix:   cfg.Prefix,
		maxFacts: cfg.MaxFacts,
		ttl:      cfg.TTL,
		ctx:      context.Background(),
	}
}

func (s *RedisKnowledgeStore) topicKey(topic string) string {
	return fmt.Sprintf("%s:%s", s.prefix, topic)
}

func (s *RedisKnowledgeStore) topicsKey() string {
	return s.prefix + ":topics"
}

// Facts returns all facts for a topic, oldest first.
func (s *RedisKnowledgeStore) Facts(topic string) ([]string, error) {
	facts, err := s.client.LRange(s.ctx, s.topicKey(topic), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis knowledge: lrange %s: %w", topic, err)
	}
	return facts, nil
}

// Append adds facts to a topic and trims the list to the configured bound.
func (s *RedisKnowledgeStore) Append(topic string, facts []string) error {
	if topic == "" || len(facts) == 0 {
		return nil
	}
	values := make([]interface{}, len(facts))
	for i, f := range facts {
		values[i] = f
	}
	key := s.topicKey(topic)
	if err := s.client.RPush(s.ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("redis knowledge: rpush %s: %w", topic, err)
	}
	if err := s.client.LTrim(s.ctx, key, -s.maxFacts, -1).Err(); err != nil {
		return fmt.Errorf("redis knowledge: ltrim %s: %w", topic, err)
	}
	if err := s.client.SAdd(s.ctx, s.topicsKey(), topic).Err(); err != nil {
		return fmt.Errorf("redis knowledge: sadd %s: %w", topic, err)
	}
	if s.ttl > 0 {
		s.client.Expire(s.ctx, key, s.ttl)
	}
	return nil
}

// Topics lists all known topics.
func (s *RedisKnowledgeStore) Topics() ([]string, error) {
	topics, err := s.client.SMembers(s.ctx, s.topicsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis knowledge: smembers: %w", err)
	}
	return topics, nil
}

// Seed loads the given domains only when their lists are empty, so
// restarts do not duplicate built-in facts.
func (s *RedisKnowledgeStore) Seed(domains map[string][]string) error {
	for topic, facts := range domains {
		n, err := s.client.LLen(s.ctx, s.topicKey(topic)).Result()
		if err != nil {
			return fmt.Errorf("redis knowledge: llen %s: %w", topic, err)
		}
		if n > 0 {
			continue
		}
		if err := s.Append(topic, facts); err != nil {
			return err
		}
	}
	return nil
}

var _ charengine.KnowledgeStore = (*RedisKnowledgeStore)(nil)
