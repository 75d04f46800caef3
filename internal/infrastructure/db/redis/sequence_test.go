package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

func TestSequence_Key(t *testing.T) {
	s := NewSequence(nil)
	if got := s.key("news"); got != "seq:news" {
		t.Fatalf("key = %q", got)
	}
}

func TestSequence_Next_Integration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := Connect(ctx, Config{Addr: addr})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer client.Close()

	s := NewSequence(client)
	s.prefix = fmt.Sprintf("test-seq-%d", time.Now().UnixNano())
	defer client.Del(ctx, s.key("news"))

	first, err := s.Next(ctx, "news")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Next(ctx, "news")
	if err != nil {
		t.Fatal(err)
	}
	if first != 1 || second != 2 {
		t.Fatalf("expected 1, 2 got %d, %d", first, second)
	}
}
