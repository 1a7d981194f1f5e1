package webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	p := NewRedisPublisher(client)

	event := Event{
		Type:      EventDispatchAssigned,
		Timestamp: time.Now().UTC(),
		Payload:   map[string]string{"incidentId": "i1", "unitId": "u1"},
	}
	require.NoError(t, p.Publish(context.Background(), event))

	raw, err := mr.Lpop(webhookQueueKey)
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, EventDispatchAssigned, got.Type)
}

func TestRedisPublisher_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	p := NewRedisPublisher(client)
	err := p.Publish(context.Background(), Event{Type: EventAlertCreated})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.Publish(context.Background(), Event{Type: EventIncidentCreated}))
}
