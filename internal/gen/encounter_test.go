package gen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
)

func TestEncountersDischargeStatusInvariant(t *testing.T) {
	encs, _ := Encounters(rand.New(rand.NewSource(5)), 1, 200, 50, 15, 1, 1, testNow)
	require.NotEmpty(t, encs)

	for _, e := range encs {
		if e.Status == model.StatusActive {
			require.Nil(t, e.DischargeDate, "encounter %d", e.EncounterID)
			require.Empty(t, e.DischargeDisposition, "encounter %d", e.EncounterID)
		} else {
			require.Equal(t, model.StatusDischarged, e.Status)
			require.NotNil(t, e.DischargeDate, "encounter %d", e.EncounterID)
			require.True(t, e.DischargeDate.After(e.AdmitDate))
			require.NotEmpty(t, e.DischargeDisposition)
		}
	}
}

func TestEncountersActiveMatchesGraceWindow(t *testing.T) {
	encs, _ := Encounters(rand.New(rand.NewSource(5)), 1, 500, 50, 15, 1, 1, testNow)

	cutoff := testNow.Add(-ActiveGraceWindow)
	for _, e := range encs {
		if e.DischargeDate != nil {
			require.False(t, e.DischargeDate.After(cutoff),
				"encounter %d discharged inside the grace window should be Active", e.EncounterID)
		}
	}
}

func TestEncountersOnePrimaryDiagnosisEach(t *testing.T) {
	encs, diags := Encounters(rand.New(rand.NewSource(5)), 1, 300, 50, 15, 1, 1, testNow)

	primaries := make(map[int]int)
	byEncounter := make(map[int]int)
	for _, d := range diags {
		byEncounter[d.EncounterID]++
		if d.Type == "Primary" {
			primaries[d.EncounterID]++
		}
	}

	require.Len(t, byEncounter, len(encs))
	for _, e := range encs {
		require.Equal(t, 1, primaries[e.EncounterID], "encounter %d", e.EncounterID)
		require.GreaterOrEqual(t, byEncounter[e.EncounterID], 1)
		require.LessOrEqual(t, byEncounter[e.EncounterID], 5)
	}
}

func TestEncountersResolvedOnlyWhenDischarged(t *testing.T) {
	encs, diags := Encounters(rand.New(rand.NewSource(5)), 1, 300, 50, 15, 1, 1, testNow)

	active := make(map[int]bool)
	for _, e := range encs {
		if e.Status == model.StatusActive {
			active[e.EncounterID] = true
		}
	}
	for _, d := range diags {
		if active[d.EncounterID] {
			require.False(t, d.IsResolved, "diagnosis %d on active encounter", d.DiagnosisID)
			require.Nil(t, d.ResolvedDate)
		}
		if d.IsResolved {
			require.NotNil(t, d.ResolvedDate, "diagnosis %d", d.DiagnosisID)
		} else {
			require.Nil(t, d.ResolvedDate, "diagnosis %d", d.DiagnosisID)
		}
	}
}

func TestEncountersIDsCountUpFromBases(t *testing.T) {
	encs, diags := Encounters(rand.New(rand.NewSource(2)), 101, 50, 50, 15, 501, 2501, testNow)

	for i, e := range encs {
		require.Equal(t, 501+i, e.EncounterID)
		require.GreaterOrEqual(t, e.PatientID, 101)
		require.Less(t, e.PatientID, 151)
	}
	for i, d := range diags {
		require.Equal(t, 2501+i, d.DiagnosisID)
	}
}

func TestEncountersPerPatientBounds(t *testing.T) {
	encs, _ := Encounters(rand.New(rand.NewSource(8)), 1, 400, 50, 15, 1, 1, testNow)
	perPatient := make(map[int]int)
	for _, e := range encs {
		perPatient[e.PatientID]++
	}
	require.Len(t, perPatient, 400)
	for _, n := range perPatient {
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 5)
	}
}
