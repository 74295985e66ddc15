package gen

import (
	"math/rand"
	"time"

	"github.com/dariyanisacc/healthcare-sql-project/internal/catalog"
	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
)

// ActiveGraceWindow is how far back of "now" a computed discharge must fall
// for the encounter to count as discharged; later discharges leave the
// encounter Active with a nil discharge date.
const ActiveGraceWindow = 7 * 24 * time.Hour

var encounterTypes = []string{
	model.TypeInpatient, model.TypeEmergency, model.TypeOutpatient, model.TypeObservation,
}

var encounterTypeWeights = []int{40, 30, 20, 10}

// Encounters generates 1-5 encounters per patient for patients
// [patientStart, patientStart+patientCount), plus 1-5 diagnoses per
// encounter, the first of each duplicate-free sample tagged Primary.
// Encounter IDs count up from encStartID and diagnosis IDs from
// diagStartID; callers own the ID-space reservation.
func Encounters(rng *rand.Rand, patientStart, patientCount, providerCount, unitCount, encStartID, diagStartID int, now time.Time) ([]model.Encounter, []model.Diagnosis) {
	var encounters []model.Encounter
	var diagnoses []model.Diagnosis

	encID := encStartID
	diagID := diagStartID

	for p := 0; p < patientCount; p++ {
		patientID := patientStart + p
		numEncounters := 1 + rng.Intn(5)
		startDate := now.Add(-730 * 24 * time.Hour)

		for e := 0; e < numEncounters; e++ {
			if !startDate.Before(now) {
				break // gap after the last discharge ran past the horizon
			}
			encType := encounterTypes[weighted(rng, encounterTypeWeights)]
			admit := timeBetween(rng, startDate, now)

			var los float64
			switch encType {
			case model.TypeInpatient:
				los = float64(intBetween(rng, 2, 14))
			case model.TypeEmergency:
				los = uniform(rng, 0.125, 1) // 3-24 hours
			case model.TypeObservation:
				los = uniform(rng, 0.5, 2)
			default: // Outpatient
				los = uniform(rng, 0.042, 0.25) // 1-6 hours
			}
			discharge := admit.Add(days(los))

			active := discharge.After(now.Add(-ActiveGraceWindow))

			enc := model.Encounter{
				EncounterID:         encID,
				PatientID:           patientID,
				EncounterNumber:     "ENC" + digits(rng, 8),
				EncounterType:       encType,
				AdmitDate:           admit,
				AdmittingProviderID: 1 + rng.Intn(providerCount),
				AttendingProviderID: 1 + rng.Intn(providerCount),
				CurrentUnitID:       1 + rng.Intn(unitCount),
				RoomNumber:          digits(rng, 3),
				BedNumber:           choice(rng, catalog.BedNumbers),
				ChiefComplaint:      choice(rng, catalog.ChiefComplaints),
				AdmissionSource:     choice(rng, catalog.AdmissionSources),
				Status:              model.StatusActive,
				CreatedAt:           admit,
			}
			if !active {
				d := discharge
				enc.DischargeDate = &d
				enc.DischargeDisposition = choice(rng, catalog.DischargeDispositions)
				enc.Status = model.StatusDischarged
			}
			encounters = append(encounters, enc)

			numDiagnoses := 1 + rng.Intn(5)
			for i, dc := range sample(rng, catalog.Diagnoses, numDiagnoses) {
				diagType := "Secondary"
				if i == 0 {
					diagType = "Primary"
				}
				diag := model.Diagnosis{
					DiagnosisID:   diagID,
					EncounterID:   encID,
					ICD10Code:     dc.ICD10,
					Description:   dc.Description,
					Type:          diagType,
					DiagnosedDate: admit.Add(time.Duration(1+rng.Intn(24)) * time.Hour),
					DiagnosedByID: 1 + rng.Intn(providerCount),
				}
				if !active && rng.Float64() > 0.3 {
					diag.IsResolved = true
					d := discharge
					diag.ResolvedDate = &d
				}
				diagnoses = append(diagnoses, diag)
				diagID++
			}

			encID++

			// An active encounter means the patient is still in the
			// hospital; no further visits can follow it.
			if active {
				break
			}
			startDate = discharge.AddDate(0, 0, intBetween(rng, 7, 180))
		}
	}

	return encounters, diagnoses
}
