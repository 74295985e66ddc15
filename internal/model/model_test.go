package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var ts = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func TestRecordWidthsMatchHeaders(t *testing.T) {
	require.Len(t, Patient{}.Record(), len(PatientHeader))
	require.Len(t, Provider{}.Record(), len(ProviderHeader))
	require.Len(t, Unit{}.Record(), len(UnitHeader))
	require.Len(t, Medication{}.Record(), len(MedicationHeader))
	require.Len(t, Encounter{}.Record(), len(EncounterHeader))
	require.Len(t, Diagnosis{}.Record(), len(DiagnosisHeader))
	require.Len(t, MedicationAdministration{}.Record(), len(MedicationAdministrationHeader))
	require.Len(t, LabResult{}.Record(), len(LabResultHeader))
	require.Len(t, VitalSign{}.Record(), len(VitalSignHeader))
	require.Len(t, NursingAssessment{}.Record(), len(NursingAssessmentHeader))
	require.Len(t, Allergy{}.Record(), len(AllergyHeader))
}

func TestEncounterRecordNullableDischarge(t *testing.T) {
	e := Encounter{
		EncounterID: 42,
		PatientID:   7,
		AdmitDate:   ts,
		Status:      StatusActive,
		CreatedAt:   ts,
	}
	rec := e.Record()
	require.Equal(t, "42", rec[0])
	require.Equal(t, "2026-01-15 09:30:00", rec[4])
	require.Equal(t, "", rec[5], "active encounter has empty discharge_date")

	d := ts.AddDate(0, 0, 3)
	e.DischargeDate = &d
	e.Status = StatusDischarged
	require.Equal(t, "2026-01-18 09:30:00", e.Record()[5])
}

func TestVitalSignRecordNullableBodyMetrics(t *testing.T) {
	v := VitalSign{VitalID: 1, EncounterID: 2, TemperatureF: 98.6, RecordedDate: ts}
	rec := v.Record()
	require.Equal(t, "98.6", rec[2])
	require.Equal(t, "", rec[9])  // weight_kg
	require.Equal(t, "", rec[10]) // height_cm
	require.Equal(t, "", rec[11]) // bmi
	require.Equal(t, "", rec[14]) // oxygen_flow_rate

	w, h, b := 80.5, 175.0, 26.3
	flow := 2
	v.WeightKg, v.HeightCm, v.BMI, v.OxygenFlowRate = &w, &h, &b, &flow
	rec = v.Record()
	require.Equal(t, "80.5", rec[9])
	require.Equal(t, "175.0", rec[10])
	require.Equal(t, "26.3", rec[11])
	require.Equal(t, "2", rec[14])
}

func TestDateOnlyColumnsUseDateLayout(t *testing.T) {
	p := Patient{DateOfBirth: ts, CreatedAt: ts}
	require.Equal(t, "2026-01-15", p.Record()[5])

	a := Allergy{OnsetDate: ts, ReportedDate: ts}
	require.Equal(t, "2026-01-15", a.Record()[6])
	require.Equal(t, "2026-01-15 09:30:00", a.Record()[7])
}
