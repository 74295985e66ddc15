package pipeline

import "github.com/dariyanisacc/healthcare-sql-project/internal/model"

// span is a contiguous run of patient IDs handed to one worker.
type span struct {
	Start int // first patient ID in the range
	Count int
}

// partitionRange splits [1, total] into parts contiguous spans. Every span
// gets total/parts IDs and the last span absorbs the remainder. parts is
// clamped to total so no span is empty.
func partitionRange(total, parts int) []span {
	if parts > total {
		parts = total
	}
	if parts < 1 {
		parts = 1
	}
	size := total / parts
	spans := make([]span, parts)
	for i := range spans {
		spans[i] = span{Start: i*size + 1, Count: size}
	}
	spans[parts-1].Count = total - (parts-1)*size
	return spans
}

// chunkEncounters splits a sorted encounter slice into parts positional
// chunks the same way partitionRange splits an ID range. Chunks preserve
// order, so every chunk's encounter IDs are strictly below the next chunk's.
func chunkEncounters(encs []model.Encounter, parts int) [][]model.Encounter {
	if parts > len(encs) {
		parts = len(encs)
	}
	if parts < 1 {
		parts = 1
	}
	size := len(encs) / parts
	chunks := make([][]model.Encounter, parts)
	for i := 0; i < parts-1; i++ {
		chunks[i] = encs[i*size : (i+1)*size]
	}
	chunks[parts-1] = encs[(parts-1)*size:]
	return chunks
}
