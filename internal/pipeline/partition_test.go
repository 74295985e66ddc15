package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
)

func TestPartitionRangeCoversWithoutGaps(t *testing.T) {
	cases := []struct {
		total, parts int
	}{
		{1000, 4},
		{1000, 1},
		{1000, 7},
		{10, 3},
		{5, 8}, // more parts than IDs
		{1, 1},
	}
	for _, tc := range cases {
		spans := partitionRange(tc.total, tc.parts)

		next := 1
		covered := 0
		for _, s := range spans {
			require.Equal(t, next, s.Start, "spans must be contiguous (total=%d parts=%d)", tc.total, tc.parts)
			require.Greater(t, s.Count, 0, "no empty spans (total=%d parts=%d)", tc.total, tc.parts)
			next += s.Count
			covered += s.Count
		}
		require.Equal(t, tc.total, covered, "every ID assigned exactly once (total=%d parts=%d)", tc.total, tc.parts)
	}
}

func TestPartitionRangeLastSpanAbsorbsRemainder(t *testing.T) {
	spans := partitionRange(1003, 4)
	require.Len(t, spans, 4)
	require.Equal(t, 250, spans[0].Count)
	require.Equal(t, 250, spans[1].Count)
	require.Equal(t, 250, spans[2].Count)
	require.Equal(t, 253, spans[3].Count)
}

func TestChunkEncountersPreservesOrder(t *testing.T) {
	encs := make([]model.Encounter, 10)
	for i := range encs {
		encs[i].EncounterID = (i + 1) * 3 // sparse IDs, still sorted
	}

	chunks := chunkEncounters(encs, 3)
	require.Len(t, chunks, 3)

	total := 0
	prev := 0
	for _, c := range chunks {
		require.NotEmpty(t, c)
		for _, e := range c {
			require.Greater(t, e.EncounterID, prev)
			prev = e.EncounterID
		}
		total += len(c)
	}
	require.Equal(t, len(encs), total)

	// Last chunk absorbs the remainder.
	require.Len(t, chunks[2], 4)
}

func TestChunkEncountersClampsToInput(t *testing.T) {
	encs := []model.Encounter{{EncounterID: 1}, {EncounterID: 2}}
	chunks := chunkEncounters(encs, 8)
	require.Len(t, chunks, 2)
}

func TestAuditBlock(t *testing.T) {
	require.NoError(t, auditBlock("encounter", 0, 100, 100))
	require.NoError(t, auditBlock("encounter", 0, 50, 0)) // tail block never collides
	err := auditBlock("encounter", 2, 101, 100)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reservation overflow")
	require.Contains(t, err.Error(), "worker 2")
}
