package bus

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	e := Envelope{
		ID:         "ev-1",
		EventType:  "task.status_changed",
		EntityType: "task",
		EntityID:   "TSK-001",
		Payload:    map[string]interface{}{"status": "running"},
		At:         time.Now().UTC().Truncate(time.Second),
	}

	payload, err := encodeFrame("pod-a", e)
	require.NoError(t, err)

	frame, err := decodeFrame([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "pod-a", frame.PodID)
	assert.False(t, frame.Truncated)
	assert.Equal(t, e.ID, frame.Envelope.ID)
	assert.Equal(t, e.Payload["status"], frame.Envelope.Payload["status"])
}

func TestFrameTruncatesOversizedPayload(t *testing.T) {
	e := Envelope{
		ID:         "ev-big",
		EventType:  "sandbox.log",
		EntityType: "sandbox",
		EntityID:   "sb-1",
		Payload:    map[string]interface{}{"blob": strings.Repeat("x", 2*notifyLimit)},
		At:         time.Now(),
	}

	payload, err := encodeFrame("pod-a", e)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(payload), notifyLimit)

	frame, err := decodeFrame([]byte(payload))
	require.NoError(t, err)
	assert.True(t, frame.Truncated)
	assert.Equal(t, "ev-big", frame.Envelope.ID)
	assert.Nil(t, frame.Envelope.Payload)
}

func TestDecodeFrameRejectsMalformed(t *testing.T) {
	_, err := decodeFrame([]byte("not json"))
	assert.Error(t, err)

	_, err = decodeFrame([]byte(`{"pod_id":"pod-a","envelope":{}}`))
	assert.Error(t, err)
}

func TestHandleNotificationSkipsOwnPod(t *testing.T) {
	b := New(nil, 8)
	defer b.Stop()

	sub := b.Subscribe(Filter{})
	relay := &Relay{podID: "pod-a", bus: b}

	own, err := encodeFrame("pod-a", Envelope{ID: "ev-own", EventType: "t", At: time.Now()})
	require.NoError(t, err)
	relay.handleNotification([]byte(own))

	foreign, err := encodeFrame("pod-b", Envelope{ID: "ev-foreign", EventType: "t", At: time.Now()})
	require.NoError(t, err)
	relay.handleNotification([]byte(foreign))

	select {
	case e := <-sub.C:
		assert.Equal(t, "ev-foreign", e.ID)
	case <-time.After(time.Second):
		t.Fatal("foreign event was not injected")
	}

	select {
	case e := <-sub.C:
		t.Fatalf("unexpected second event %s", e.ID)
	case <-time.After(50 * time.Millisecond):
	}
}
