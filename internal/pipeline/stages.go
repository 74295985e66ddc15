package pipeline

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/dariyanisacc/healthcare-sql-project/internal/gen"
	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
)

// GenerateEncounters produces encounters and diagnoses for patients
// [1, c.Patients], partitioned across c.Workers. Worker i covers one
// contiguous patient range, reseeds with seed+rangeStart, and counts IDs up
// from the range's reserved block. Results merge in range order and are
// stable-sorted by primary key, so they are identical for any scheduling
// of the same (seed, workers) pair.
func (c Config) GenerateEncounters() (EncounterData, error) {
	spans := partitionRange(c.Patients, c.Workers)
	c.Log.Info().Int("patients", c.Patients).Int("workers", len(spans)).
		Msg("generating encounters")

	results := make([]EncounterData, len(spans))
	run := func(i int) {
		s := spans[i]
		rng := rand.New(rand.NewSource(c.Seed + int64(s.Start)))
		encStart := (s.Start-1)*c.Res.EncountersPerPatient + 1
		diagStart := (s.Start-1)*c.Res.DiagnosesPerPatient + 1
		encs, diags := gen.Encounters(rng, s.Start, s.Count, c.Providers, c.Units, encStart, diagStart, c.Now)
		results[i] = EncounterData{Encounters: encs, Diagnoses: diags}
	}

	if len(spans) == 1 {
		run(0)
	} else {
		var wg sync.WaitGroup
		for i := range spans {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				run(i)
			}(i)
		}
		wg.Wait()
	}

	var out EncounterData
	for i, r := range results {
		s := spans[i]
		if err := auditBlock("encounter", i, len(r.Encounters), s.Count*c.Res.EncountersPerPatient); err != nil {
			return EncounterData{}, err
		}
		if err := auditBlock("diagnosis", i, len(r.Diagnoses), s.Count*c.Res.DiagnosesPerPatient); err != nil {
			return EncounterData{}, err
		}
		out.Encounters = append(out.Encounters, r.Encounters...)
		out.Diagnoses = append(out.Diagnoses, r.Diagnoses...)
	}

	sort.SliceStable(out.Encounters, func(a, b int) bool {
		return out.Encounters[a].EncounterID < out.Encounters[b].EncounterID
	})
	sort.SliceStable(out.Diagnoses, func(a, b int) bool {
		return out.Diagnoses[a].DiagnosisID < out.Diagnoses[b].DiagnosisID
	})

	c.Log.Info().Int("encounters", len(out.Encounters)).
		Int("diagnoses", len(out.Diagnoses)).Msg("encounter stage done")
	return out, nil
}

// GenerateClinical produces the clinical event streams for encs, which must
// be sorted by encounter ID (GenerateEncounters guarantees this). Workers
// take positional chunks; each reseeds with seed+firstEncounterID and
// counts IDs up from blocks reserved at that first ID, so chunks never
// collide when the audit passes.
func (c Config) GenerateClinical(encs []model.Encounter) (ClinicalData, error) {
	if len(encs) == 0 {
		return ClinicalData{}, nil
	}
	chunks := chunkEncounters(encs, c.Workers)
	c.Log.Info().Int("encounters", len(encs)).Int("workers", len(chunks)).
		Msg("generating clinical events")

	results := make([]ClinicalData, len(chunks))
	run := func(i int) {
		chunk := chunks[i]
		first := chunk[0].EncounterID
		rng := rand.New(rand.NewSource(c.Seed + int64(first)))
		r := &results[i]
		r.Admins = gen.MedicationAdministrations(rng, chunk, c.Providers, c.Medications,
			(first-1)*c.Res.AdminsPerEncounter+1, c.Now)
		r.Labs = gen.LabResults(rng, chunk, (first-1)*c.Res.LabsPerEncounter+1, c.Now)
		r.Vitals = gen.VitalSigns(rng, chunk, c.Providers, (first-1)*c.Res.VitalsPerEncounter+1, c.Now)
		r.Assessments = gen.NursingAssessments(rng, chunk, c.Providers, (first-1)*c.Res.AssessmentsPerEncounter+1, c.Now)
	}

	if len(chunks) == 1 {
		run(0)
	} else {
		var wg sync.WaitGroup
		for i := range chunks {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				run(i)
			}(i)
		}
		wg.Wait()
	}

	var out ClinicalData
	for i, r := range results {
		// Block capacity runs to the next chunk's first reserved ID; the
		// last chunk owns the tail of every ID space.
		width := 0
		if i < len(chunks)-1 {
			width = chunks[i+1][0].EncounterID - chunks[i][0].EncounterID
		}
		if err := auditBlock("medication administration", i, len(r.Admins), width*c.Res.AdminsPerEncounter); err != nil {
			return ClinicalData{}, err
		}
		if err := auditBlock("lab result", i, len(r.Labs), width*c.Res.LabsPerEncounter); err != nil {
			return ClinicalData{}, err
		}
		if err := auditBlock("vital sign", i, len(r.Vitals), width*c.Res.VitalsPerEncounter); err != nil {
			return ClinicalData{}, err
		}
		if err := auditBlock("nursing assessment", i, len(r.Assessments), width*c.Res.AssessmentsPerEncounter); err != nil {
			return ClinicalData{}, err
		}
		out.Admins = append(out.Admins, r.Admins...)
		out.Labs = append(out.Labs, r.Labs...)
		out.Vitals = append(out.Vitals, r.Vitals...)
		out.Assessments = append(out.Assessments, r.Assessments...)
	}

	sort.SliceStable(out.Admins, func(a, b int) bool { return out.Admins[a].AdminID < out.Admins[b].AdminID })
	sort.SliceStable(out.Labs, func(a, b int) bool { return out.Labs[a].LabID < out.Labs[b].LabID })
	sort.SliceStable(out.Vitals, func(a, b int) bool { return out.Vitals[a].VitalID < out.Vitals[b].VitalID })
	sort.SliceStable(out.Assessments, func(a, b int) bool {
		return out.Assessments[a].AssessmentID < out.Assessments[b].AssessmentID
	})

	c.Log.Info().Int("med_admins", len(out.Admins)).Int("labs", len(out.Labs)).
		Int("vitals", len(out.Vitals)).Int("assessments", len(out.Assessments)).
		Msg("clinical stage done")
	return out, nil
}
