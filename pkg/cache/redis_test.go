package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "not-a-valid-url"); err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "redis://localhost:19999"); err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

func TestKeys(t *testing.T) {
	owner := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	inv := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	if got := InvoiceKey(owner, inv); got != "invoice:550e8400-e29b-41d4-a716-446655440000:123e4567-e89b-12d3-a456-426614174000" {
		t.Fatalf("unexpected invoice key %q", got)
	}
	if got := PDFKey(owner, inv); got != "invoice_pdf:550e8400-e29b-41d4-a716-446655440000:123e4567-e89b-12d3-a456-426614174000" {
		t.Fatalf("unexpected pdf key %q", got)
	}
}

func TestInvoiceHashRoundTrip(t *testing.T) {
	in := &CachedInvoice{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Number:    "FM-20260105-0001",
		UpdatedAt: time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC),
		Payload:   json.RawMessage(`{"total":"86.23"}`),
	}

	kv := encodeInvoiceHash(in)
	vals := make(map[string]string, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		vals[kv[i].(string)] = kv[i+1].(string)
	}

	out, err := decodeInvoiceHash(vals)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID != in.ID || out.OwnerID != in.OwnerID || out.Number != in.Number {
		t.Fatalf("identity mismatch: %+v", out)
	}
	if !out.UpdatedAt.Equal(in.UpdatedAt) {
		t.Fatalf("updated_at mismatch: %v", out.UpdatedAt)
	}
	if string(out.Payload) != string(in.Payload) {
		t.Fatalf("payload mismatch: %s", out.Payload)
	}
}

func TestDecodeInvoiceHash_Corrupt(t *testing.T) {
	vals := map[string]string{
		"id":         uuid.NewString(),
		"owner_id":   uuid.NewString(),
		"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
		"payload":    "{not json",
	}
	if _, err := decodeInvoiceHash(vals); err == nil {
		t.Fatal("expected error for corrupt payload")
	}

	vals["payload"] = "{}"
	vals["id"] = "nope"
	if _, err := decodeInvoiceHash(vals); err == nil {
		t.Fatal("expected error for bad id")
	}
}

func TestWithPool(t *testing.T) {
	o := &redis.Options{PoolSize: 10, MinIdleConns: 2}
	WithPool(4, 1)(o)
	if o.PoolSize != 4 || o.MinIdleConns != 1 {
		t.Fatalf("unexpected pool settings %d/%d", o.PoolSize, o.MinIdleConns)
	}
}

func TestRecordLookup(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")
	lookups, err := meter.Int64Counter("cache.lookups")
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	rc := &RedisClient{lookups: lookups}

	ctx := context.Background()
	rc.recordLookup(ctx, "invoice", true)
	rc.recordLookup(ctx, "invoice", false)
	rc.recordLookup(ctx, "invoice", false)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("unexpected data %T", rm.ScopeMetrics[0].Metrics[0].Data)
	}
	got := map[string]int64{}
	for _, dp := range sum.DataPoints {
		outcome, _ := dp.Attributes.Value("outcome")
		got[outcome.AsString()] = dp.Value
	}
	if got["hit"] != 1 || got["miss"] != 2 {
		t.Fatalf("unexpected counts %v", got)
	}

	// a client built without a counter records nothing
	(&RedisClient{}).recordLookup(ctx, "invoice", true)
}

// Integration tests, skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	rc, err := NewRedisClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	t.Run("Ping", func(t *testing.T) {
		if err := rc.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("InvoiceCache", func(t *testing.T) {
		c := NewInvoiceCache(rc, time.Minute)
		owner, id := uuid.New(), uuid.New()

		if _, err := c.Get(ctx, owner, id); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil on miss, got %v", err)
		}
		in := &CachedInvoice{ID: id, OwnerID: owner, Number: "FM-20260105-0001", UpdatedAt: time.Now().UTC(), Payload: json.RawMessage(`{}`)}
		if err := c.Set(ctx, in); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := c.Get(ctx, owner, id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Number != in.Number {
			t.Fatalf("unexpected number %q", got.Number)
		}
		if ttl := rc.Client().TTL(ctx, InvoiceKey(owner, id)).Val(); ttl <= 0 || ttl > time.Minute {
			t.Fatalf("unexpected ttl %v", ttl)
		}
		if err := c.Delete(ctx, owner, id); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		// another owner never sees the entry
		if _, err := c.Get(ctx, uuid.New(), id); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected miss for other owner, got %v", err)
		}
	})

	t.Run("PDFCache", func(t *testing.T) {
		c := NewPDFCache(rc, time.Minute)
		owner, id := uuid.New(), uuid.New()

		if _, err := c.Get(ctx, owner, id); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil on miss, got %v", err)
		}
		if err := c.Set(ctx, owner, id, []byte("%PDF-1.4")); err != nil {
			t.Fatalf("Set: %v", err)
		}
		data, err := c.Get(ctx, owner, id)
		if err != nil || string(data) != "%PDF-1.4" {
			t.Fatalf("Get: %q %v", data, err)
		}
		_ = c.Delete(ctx, owner, id)
	})
}
