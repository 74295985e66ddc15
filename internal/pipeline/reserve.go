package pipeline

import "fmt"

// Reservations are the per-parent ID-block multipliers. Each worker derives
// its starting IDs from these, so blocks are sparse but collision-free as
// long as no worker produces more rows than its block holds. The audit
// after each stage enforces exactly that.
type Reservations struct {
	EncountersPerPatient    int
	DiagnosesPerPatient     int
	AllergiesPerPatient     int
	AdminsPerEncounter      int
	LabsPerEncounter        int
	VitalsPerEncounter      int
	AssessmentsPerEncounter int
}

// DefaultReservations hold comfortably above the observed per-parent maxima
// at the default generation parameters.
func DefaultReservations() Reservations {
	return Reservations{
		EncountersPerPatient:    5,
		DiagnosesPerPatient:     25,
		AllergiesPerPatient:     3,
		AdminsPerEncounter:      100,
		LabsPerEncounter:        50,
		VitalsPerEncounter:      200,
		AssessmentsPerEncounter: 20,
	}
}

// auditBlock verifies that a worker's row count fits inside its reserved ID
// block. capacity <= 0 means the worker owns the tail of the ID space and
// cannot collide.
func auditBlock(kind string, worker, produced, capacity int) error {
	if capacity > 0 && produced > capacity {
		return fmt.Errorf("reservation overflow: worker %d produced %d %s rows, block holds %d; raise the %s multiplier",
			worker, produced, kind, capacity, kind)
	}
	return nil
}
