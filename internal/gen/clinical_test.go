package gen

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
)

func dischargedEncounter(id, patientID, unitID int, encType string, losDays int) model.Encounter {
	admit := testNow.AddDate(0, 0, -30)
	discharge := admit.AddDate(0, 0, losDays)
	return model.Encounter{
		EncounterID:         id,
		PatientID:           patientID,
		EncounterType:       encType,
		AdmitDate:           admit,
		DischargeDate:       &discharge,
		AttendingProviderID: 7,
		CurrentUnitID:       unitID,
		Status:              model.StatusDischarged,
	}
}

func activeEncounter(id, patientID, unitID int, encType string) model.Encounter {
	return model.Encounter{
		EncounterID:         id,
		PatientID:           patientID,
		EncounterType:       encType,
		AdmitDate:           testNow.AddDate(0, 0, -3),
		AttendingProviderID: 7,
		CurrentUnitID:       unitID,
		Status:              model.StatusActive,
	}
}

func TestMedicationAdministrationsDischargedOnly(t *testing.T) {
	encs := []model.Encounter{
		dischargedEncounter(1, 1, 10, model.TypeInpatient, 4),
		activeEncounter(2, 2, 10, model.TypeInpatient),
	}
	admins := MedicationAdministrations(rand.New(rand.NewSource(4)), encs, 50, 200, 1, testNow)
	require.NotEmpty(t, admins)

	for _, a := range admins {
		require.Equal(t, 1, a.EncounterID, "active encounters get no administrations")
		require.Contains(t, []string{"Given", "Held", "Refused", "Not Given"}, a.Status)
		if a.Status == "Given" {
			require.Empty(t, a.HoldReason)
		} else {
			require.NotEmpty(t, a.HoldReason)
		}
		require.Equal(t, 7, a.OrderingID, "ordering provider is the attending")
		require.False(t, a.AdminDate.Before(encs[0].AdmitDate))
		require.True(t, a.AdminDate.Before(*encs[0].DischargeDate))
	}
}

func TestMedicationAdministrationsIDsCountUp(t *testing.T) {
	encs := []model.Encounter{dischargedEncounter(1, 1, 10, model.TypeInpatient, 5)}
	admins := MedicationAdministrations(rand.New(rand.NewSource(4)), encs, 50, 200, 901, testNow)
	for i, a := range admins {
		require.Equal(t, 901+i, a.AdminID)
	}
}

func TestLabResultsOnlyForInpatientAndEmergency(t *testing.T) {
	encs := []model.Encounter{
		dischargedEncounter(1, 1, 10, model.TypeInpatient, 3),
		dischargedEncounter(2, 2, 5, model.TypeEmergency, 1),
		dischargedEncounter(3, 3, 10, model.TypeOutpatient, 1),
		dischargedEncounter(4, 4, 10, model.TypeObservation, 1),
	}
	labs := LabResults(rand.New(rand.NewSource(6)), encs, 1, testNow)
	require.NotEmpty(t, labs)

	for _, l := range labs {
		require.Contains(t, []int{1, 2}, l.EncounterID)
	}
}

func TestLabResultsFlagsMatchRanges(t *testing.T) {
	encs := []model.Encounter{dischargedEncounter(1, 1, 10, model.TypeInpatient, 14)}
	labs := LabResults(rand.New(rand.NewSource(6)), encs, 1, testNow)

	flags := make(map[string]int)
	for i, l := range labs {
		require.Equal(t, i+1, l.LabID)
		require.Equal(t, "Final", l.ResultStatus)
		require.Equal(t, 5, l.CollectedDate.Hour(), "morning draw")
		require.True(t, l.ResultedDate.After(l.CollectedDate))
		flags[l.AbnormalFlag]++
	}
	require.Greater(t, flags[model.FlagNormal], 0)
	// 20% of BMP draws take the abnormal branch; a 14-day panel makes at
	// least one all but certain.
	abnormal := len(labs) - flags[model.FlagNormal]
	require.Greater(t, abnormal, 0)
}

func TestLabResultsActiveEncounterRunsToNow(t *testing.T) {
	encs := []model.Encounter{activeEncounter(1, 1, 10, model.TypeInpatient)}
	labs := LabResults(rand.New(rand.NewSource(6)), encs, 1, testNow)
	require.NotEmpty(t, labs)
	for _, l := range labs {
		require.True(t, l.CollectedDate.Before(testNow))
	}
}

func TestVitalSignsIntervalFollowsUnitAcuity(t *testing.T) {
	require.Equal(t, time.Hour, vitalsInterval(1))
	require.Equal(t, time.Hour, vitalsInterval(4))
	require.Equal(t, 2*time.Hour, vitalsInterval(5))
	require.Equal(t, 4*time.Hour, vitalsInterval(6))
	require.Equal(t, 4*time.Hour, vitalsInterval(15))

	icu := []model.Encounter{dischargedEncounter(1, 1, 1, model.TypeInpatient, 2)}
	ward := []model.Encounter{dischargedEncounter(1, 1, 10, model.TypeInpatient, 2)}
	icuVitals := VitalSigns(rand.New(rand.NewSource(3)), icu, 50, 1, testNow)
	wardVitals := VitalSigns(rand.New(rand.NewSource(3)), ward, 50, 1, testNow)
	require.Equal(t, 48, len(icuVitals))
	require.Equal(t, 12, len(wardVitals))
}

func TestVitalSignsClampedAndAdmissionOnlyBody(t *testing.T) {
	encs := []model.Encounter{
		dischargedEncounter(1, 1, 1, model.TypeInpatient, 7),
		dischargedEncounter(2, 2, 10, model.TypeInpatient, 7),
	}
	vitals := VitalSigns(rand.New(rand.NewSource(3)), encs, 50, 1, testNow)

	seenFirst := make(map[int]bool)
	for _, v := range vitals {
		require.GreaterOrEqual(t, v.TemperatureF, 90.0)
		require.LessOrEqual(t, v.TemperatureF, 110.0)
		require.GreaterOrEqual(t, v.HeartRate, 40)
		require.LessOrEqual(t, v.HeartRate, 180)
		require.GreaterOrEqual(t, v.OxygenSat, 85)
		require.LessOrEqual(t, v.OxygenSat, 100)

		if !seenFirst[v.EncounterID] {
			seenFirst[v.EncounterID] = true
			require.NotNil(t, v.WeightKg, "admission reading records weight")
			require.NotNil(t, v.HeightCm)
			require.NotNil(t, v.BMI)
		} else {
			require.Nil(t, v.WeightKg)
			require.Nil(t, v.HeightCm)
			require.Nil(t, v.BMI)
		}

		if v.OxygenSat > 93 {
			require.Equal(t, "Room Air", v.OxygenDelivery)
			require.Nil(t, v.OxygenFlowRate)
		} else {
			require.NotEqual(t, "Room Air", v.OxygenDelivery)
			require.NotNil(t, v.OxygenFlowRate)
		}
	}
}

func TestNursingAssessmentsAdmissionPlusShifts(t *testing.T) {
	encs := []model.Encounter{
		dischargedEncounter(1, 1, 10, model.TypeInpatient, 3),
		activeEncounter(2, 2, 10, model.TypeInpatient),
	}
	assessments := NursingAssessments(rand.New(rand.NewSource(9)), encs, 50, 1, testNow)

	byEnc := make(map[int][]model.NursingAssessment)
	for i, a := range assessments {
		require.Equal(t, i+1, a.AssessmentID)
		byEnc[a.EncounterID] = append(byEnc[a.EncounterID], a)
	}

	// Discharged: admission plus one shift assessment every 12h of a
	// 72h stay, minus the one that would land exactly at discharge.
	require.Len(t, byEnc[1], 6)
	require.Equal(t, "Admission", byEnc[1][0].AssessmentType)
	for _, a := range byEnc[1][1:] {
		require.Equal(t, "Shift", a.AssessmentType)
	}

	// Active encounters get the admission assessment only.
	require.Len(t, byEnc[2], 1)
	require.Equal(t, "Admission", byEnc[2][0].AssessmentType)
}
