package gen

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/dariyanisacc/healthcare-sql-project/internal/catalog"
	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
)

// seriesEnd returns the end of an encounter's clinical timeline: discharge
// for discharged encounters, "now" for active ones.
func seriesEnd(enc model.Encounter, now time.Time) time.Time {
	if enc.DischargeDate != nil {
		return *enc.DischargeDate
	}
	return now
}

// MedicationAdministrations generates dose records for the discharged
// encounters in encs. Each gets 3-10 medications sampled without
// replacement from the formulary, administered on their frequency schedule
// from admission to discharge; ~5% of doses are held, refused or not given.
func MedicationAdministrations(rng *rand.Rand, encs []model.Encounter, providerCount, medicationCount, startID int, now time.Time) []model.MedicationAdministration {
	var admins []model.MedicationAdministration
	id := startID

	for _, enc := range encs {
		if enc.Status != model.StatusDischarged {
			continue
		}
		start := enc.AdmitDate
		end := *enc.DischargeDate

		numMeds := intBetween(rng, 3, 10)
		medIDs := rng.Perm(medicationCount)[:numMeds]

		for _, m := range medIDs {
			medID := m + 1
			frequency := choice(rng, catalog.Frequencies)
			timesPerDay, scheduled := catalog.TimesPerDay[frequency]
			if !scheduled {
				timesPerDay = rng.Intn(3) // PRN / STAT
			}
			if timesPerDay == 0 {
				continue
			}

			for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
				for slot := 0; slot < timesPerDay; slot++ {
					adminTime := day.Add(time.Duration(float64(slot) * 24 / float64(timesPerDay) * float64(time.Hour)))

					status := "Given"
					holdReason := ""
					if rng.Float64() > 0.95 {
						status = choice(rng, []string{"Held", "Refused", "Not Given"})
						switch status {
						case "Held":
							holdReason = "Patient NPO"
						case "Refused":
							holdReason = "Patient refused"
						default:
							holdReason = "Medication unavailable"
						}
					}

					route := choice(rng, catalog.Routes)
					site := ""
					if route == "IM" || route == "SubQ" {
						site = "Left arm"
					}

					admins = append(admins, model.MedicationAdministration{
						AdminID:         id,
						EncounterID:     enc.EncounterID,
						MedicationID:    medID,
						OrderedDose:     choice(rng, catalog.Doses),
						OrderedUnit:     "mg",
						OrderedRoute:    choice(rng, catalog.Routes),
						OrderedFreq:     frequency,
						AdminDate:       adminTime,
						AdminDose:       choice(rng, catalog.Doses),
						AdminUnit:       "mg",
						AdminRoute:      route,
						AdminSite:       site,
						OrderingID:      enc.AttendingProviderID,
						AdministeringID: 1 + rng.Intn(providerCount),
						Status:          status,
						HoldReason:      holdReason,
						CreatedAt:       adminTime,
					})
					id++
				}
			}
		}
	}

	return admins
}

// labValue draws a result for a test, abnormal 20% of the time, and flags
// it by distance from the reference bound.
func labValue(rng *rand.Rand, test catalog.LabTest) (float64, string) {
	if rng.Float64() > 0.8 { // 20% abnormal
		if rng.Float64() > 0.5 {
			v := round2(uniform(rng, test.High, test.High*1.3))
			if v < test.High*1.2 {
				return v, model.FlagHigh
			}
			return v, model.FlagCriticalHigh
		}
		v := round2(uniform(rng, test.Low*0.7, test.Low))
		if v > test.Low*0.8 {
			return v, model.FlagLow
		}
		return v, model.FlagCriticalLow
	}
	return round2(uniform(rng, test.Low, test.High)), model.FlagNormal
}

// LabResults generates a daily 05:00 basic metabolic panel, plus a CBC
// every other day, for Inpatient and Emergency encounters only. Other
// encounter types produce no lab records.
func LabResults(rng *rand.Rand, encs []model.Encounter, startID int, now time.Time) []model.LabResult {
	var labs []model.LabResult
	id := startID

	for _, enc := range encs {
		if enc.EncounterType != model.TypeInpatient && enc.EncounterType != model.TypeEmergency {
			continue
		}
		start := enc.AdmitDate
		end := seriesEnd(enc, now)

		for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
			collected := time.Date(day.Year(), day.Month(), day.Day(), 5, 0, 0, 0, day.Location())

			for _, test := range catalog.LabTests[:catalog.BMPSize] {
				value, flag := labValue(rng, test)
				labs = append(labs, model.LabResult{
					LabID:         id,
					EncounterID:   enc.EncounterID,
					LOINCCode:     test.LOINC,
					TestName:      test.Name,
					TestCategory:  test.Category,
					ResultValue:   strconv.FormatFloat(value, 'f', 2, 64),
					ResultUnit:    test.Unit,
					ResultStatus:  "Final",
					AbnormalFlag:  flag,
					RefRangeLow:   test.Low,
					RefRangeHigh:  test.High,
					CollectedDate: collected,
					ResultedDate:  collected.Add(2 * time.Hour),
					OrderingID:    enc.AttendingProviderID,
					CreatedAt:     collected,
				})
				id++
			}

			// CBC every other day.
			if int(day.Sub(start).Hours()/24)%2 == 0 {
				for _, test := range catalog.LabTests[catalog.CBCStart:catalog.CBCEnd] {
					value := round2(uniform(rng, test.Low*0.9, test.High*1.1))
					flag := model.FlagNormal
					if value > test.High {
						flag = model.FlagHigh
					} else if value < test.Low {
						flag = model.FlagLow
					}
					labs = append(labs, model.LabResult{
						LabID:         id,
						EncounterID:   enc.EncounterID,
						LOINCCode:     test.LOINC,
						TestName:      test.Name,
						TestCategory:  test.Category,
						ResultValue:   strconv.FormatFloat(value, 'f', 2, 64),
						ResultUnit:    test.Unit,
						ResultStatus:  "Final",
						AbnormalFlag:  flag,
						RefRangeLow:   test.Low,
						RefRangeHigh:  test.High,
						CollectedDate: collected,
						ResultedDate:  collected.Add(1 * time.Hour),
						OrderingID:    enc.AttendingProviderID,
						CreatedAt:     collected,
					})
					id++
				}
			}
		}
	}

	return labs
}

// vitalsInterval follows unit acuity: hourly in the ICUs (units 1-4), every
// two hours in the ED (unit 5), every four hours elsewhere.
func vitalsInterval(unitID int) time.Duration {
	switch {
	case unitID <= 4:
		return 1 * time.Hour
	case unitID == 5:
		return 2 * time.Hour
	default:
		return 4 * time.Hour
	}
}

// VitalSigns generates a vitals series for every encounter from admission
// to discharge-or-now. Gaussian draws are clamped to physiological ranges;
// weight, height and BMI appear only on the admission reading.
func VitalSigns(rng *rand.Rand, encs []model.Encounter, providerCount, startID int, now time.Time) []model.VitalSign {
	var vitals []model.VitalSign
	id := startID

	for _, enc := range encs {
		start := enc.AdmitDate
		end := seriesEnd(enc, now)
		interval := vitalsInterval(enc.CurrentUnitID)

		for ts := start; ts.Before(end); ts = ts.Add(interval) {
			temp := gaussClamp(rng, 98.6, 0.8, 90, 110)
			hr := int(gaussClamp(rng, 75, 15, 40, 180))
			rr := int(gaussClamp(rng, 16, 3, 8, 40))
			sys := int(gaussClamp(rng, 120, 15, 70, 200))
			dia := int(gaussClamp(rng, 80, 10, 40, 120))
			o2 := int(gaussClamp(rng, 97, 2, 85, 100))

			v := model.VitalSign{
				VitalID:      id,
				EncounterID:  enc.EncounterID,
				TemperatureF: float64(int(temp*10+0.5)) / 10,
				HeartRate:    hr,
				RespRate:     rr,
				BPSystolic:   sys,
				BPDiastolic:  dia,
				OxygenSat:    o2,
				PainScale:    choice(rng, catalog.PainScale),
				Position:     choice(rng, catalog.Positions),
				RecordedDate: ts,
				RecordedByID: 1 + rng.Intn(providerCount),
			}
			if ts.Equal(start) {
				w := float64(int(gaussClamp(rng, 75, 15, 30, 250)*10+0.5)) / 10
				h := float64(int(gaussClamp(rng, 170, 10, 120, 220)*10+0.5)) / 10
				b := float64(int(gaussClamp(rng, 26, 5, 12, 60)*10+0.5)) / 10
				v.WeightKg = &w
				v.HeightCm = &h
				v.BMI = &b
			}
			if o2 > 93 {
				v.OxygenDelivery = "Room Air"
			} else {
				v.OxygenDelivery = choice(rng, catalog.OxygenDelivery)
				flow := choice(rng, catalog.OxygenFlowRates)
				v.OxygenFlowRate = &flow
			}
			vitals = append(vitals, v)
			id++
		}
	}

	return vitals
}

// NursingAssessments generates one admission assessment per encounter plus
// 12-hourly shift assessments for discharged encounters.
func NursingAssessments(rng *rand.Rand, encs []model.Encounter, providerCount, startID int, now time.Time) []model.NursingAssessment {
	var assessments []model.NursingAssessment
	id := startID

	for _, enc := range encs {
		assessments = append(assessments, nursingAssessment(rng, enc, id, enc.AdmitDate, "Admission",
			"Initial nursing assessment completed.", providerCount))
		id++

		if enc.Status != model.StatusDischarged {
			continue
		}
		end := *enc.DischargeDate
		for ts := enc.AdmitDate.Add(12 * time.Hour); ts.Before(end); ts = ts.Add(12 * time.Hour) {
			note := "Shift assessment - " + choice(rng, catalog.ShiftNotes) + "."
			assessments = append(assessments, nursingAssessment(rng, enc, id, ts, "Shift", note, providerCount))
			id++
		}
	}

	return assessments
}

func nursingAssessment(rng *rand.Rand, enc model.Encounter, id int, ts time.Time, kind, note string, providerCount int) model.NursingAssessment {
	return model.NursingAssessment{
		AssessmentID:    id,
		EncounterID:     enc.EncounterID,
		AssessmentDate:  ts,
		AssessmentType:  kind,
		Consciousness:   choice(rng, catalog.ConsciousnessLevels),
		Orientation:     choice(rng, catalog.Orientations),
		FallRiskScore:   rng.Intn(11),
		FallRiskLevel:   choice(rng, catalog.FallRiskLevels),
		BedAlarmOn:      rng.Intn(2) == 0,
		RestraintsInUse: false,
		SkinIntegrity:   choice(rng, catalog.SkinIntegrity),
		PressureUlcer:   rng.Float64() < 0.1,
		BradenScore:     intBetween(rng, 15, 23),
		ActivityLevel:   choice(rng, catalog.ActivityLevels),
		GaitSteady:      rng.Intn(3) != 2,
		AssistiveDevice: choice(rng, catalog.AssistiveDevices),
		Notes:           note,
		AssessingID:     1 + rng.Intn(providerCount),
		CreatedAt:       ts,
	}
}
