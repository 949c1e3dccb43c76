package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

func TestRequestFromEnvelope(t *testing.T) {
	req, ok := requestFromEnvelope(bus.Envelope{
		EventType: models.EventTypeMergeRequired,
		EntityID:  "TSK-parent",
		Payload: map[string]interface{}{
			"parent_task_id":  "TSK-parent",
			"ticket_id":       "TKT-001",
			"source_task_ids": []string{"TSK-a", "TSK-b"},
		},
	})
	require.True(t, ok)
	assert.Equal(t, "TSK-parent", req.ParentTaskID)
	assert.Equal(t, "TKT-001", req.TicketID)
	assert.Equal(t, DefaultTargetBranch, req.TargetBranch)
	require.Len(t, req.Sources, 2)
	assert.Equal(t, Source{TaskID: "TSK-a", Branch: "task/TSK-a"}, req.Sources[0])
}

func TestRequestFromEnvelopeAfterJSONRelay(t *testing.T) {
	req, ok := requestFromEnvelope(bus.Envelope{
		EntityID: "TSK-parent",
		Payload: map[string]interface{}{
			"source_task_ids": []interface{}{"TSK-a"},
		},
	})
	require.True(t, ok)
	assert.Equal(t, "TSK-parent", req.ParentTaskID)
	assert.Equal(t, []Source{{TaskID: "TSK-a", Branch: "task/TSK-a"}}, req.Sources)
}

func TestRequestFromEnvelopeRejectsMalformed(t *testing.T) {
	_, ok := requestFromEnvelope(bus.Envelope{Payload: map[string]interface{}{}})
	assert.False(t, ok)

	_, ok = requestFromEnvelope(bus.Envelope{
		EntityID: "TSK-parent",
		Payload:  map[string]interface{}{"source_task_ids": []string{}},
	})
	assert.False(t, ok)

	_, ok = requestFromEnvelope(bus.Envelope{
		EntityID: "TSK-parent",
		Payload:  map[string]interface{}{"source_task_ids": []interface{}{42}},
	})
	assert.False(t, ok)
}
