package store

import (
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	charengine "github.com/chessmates/character-engine-go"
)

func newTestRedisStore(t *testing.T, config ...RedisConfig) (*RedisKnowledgeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisKnowledgeStore(client, config...), mr
}

func TestRedisStore_AppendAndFacts(t *testing.T) {
	s, _ := newTestRedisStore(t)

	if err := s.Append("comedy", []string{"fact A", "fact B"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Append("comedy", []string{"fact C"}); err != nil {
		t.Fatal(err)
	}
	facts, err := s.Facts("comedy")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(facts, []string{"fact A", "fact B", "fact C"}) {
		t.Fatalf("facts = %v", facts)
	}

	if facts, _ := s.Facts("unknown"); len(facts) != 0 {
		t.Fatalf("unknown topic should be empty, got %v", facts)
	}
	if err := s.Append("", []string{"x"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Append("comedy", nil); err != nil {
		t.Fatal(err)
	}
}

func TestRedisStore_TrimsToMaxFacts(t *testing.T) {
	s, _ := newTestRedisStore(t, RedisConfig{MaxFacts: 3})

	if err := s.Append("chess", []string{"f1", "f2", "f3", "f4", "f5"}); err != nil {
		t.Fatal(err)
	}
	facts, _ := s.Facts("chess")
	if !reflect.DeepEqual(facts, []string{"f3", "f4", "f5"}) {
		t.Fatalf("trim kept %v, want newest 3", facts)
	}
}

func TestRedisStore_Topics(t *testing.T) {
	s, _ := newTestRedisStore(t)
	s.Append("comedy", []string{"a"})
	s.Append("cooking", []string{"b"})

	topics, err := s.Topics()
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(topics)
	if !reflect.DeepEqual(topics, []string{"comedy", "cooking"}) {
		t.Fatalf("topics = %v", topics)
	}
}

func TestRedisStore_SeedSkipsNonEmptyTopics(t *testing.T) {
	s, _ := newTestRedisStore(t)

	if err := s.Seed(charengine.BuiltinKnowledge()); err != nil {
		t.Fatal(err)
	}
	before, _ := s.Facts("comedy")
	if len(before) == 0 {
		t.Fatal("seed loaded nothing")
	}

	// Seeding again must not duplicate facts.
	if err := s.Seed(charengine.BuiltinKnowledge()); err != nil {
		t.Fatal(err)
	}
	after, _ := s.Facts("comedy")
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("re-seed changed facts: %v -> %v", before, after)
	}
}

func TestRedisStore_TTLAndPrefix(t *testing.T) {
	s, mr := newTestRedisStore(t, RedisConfig{Prefix: "kb", TTL: time.Minute})
	if err := s.Append("comedy", []string{"a"}); err != nil {
		t.Fatal(err)
	}
	if !mr.Exists("kb:comedy") {
		t.Fatal("prefixed key missing")
	}
	if ttl := mr.TTL("kb:comedy"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}
}

func TestRedisStore_ServesEngine(t *testing.T) {
	s, _ := newTestRedisStore(t)
	if err := s.Seed(charengine.BuiltinKnowledge()); err != nil {
		t.Fatal(err)
	}
	engine := charengine.NewResponseEngine("comedy-king",
		charengine.WithKnowledgeStore(s),
		charengine.WithRandSource(charengine.NewSeededRand(3)))

	result := engine.Respond(charengine.ConversationContext{UserMessage: "tell me a joke"}, "")
	if result.ModifiedResponse == "" {
		t.Fatal("empty reply from redis-backed engine")
	}
	snap := engine.AgentKnowledge()
	if len(snap.KnowledgeAreas) != 4 {
		t.Fatalf("knowledge areas = %v", snap.KnowledgeAreas)
	}
}
