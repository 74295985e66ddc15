// Package pipeline orchestrates the generation stages. Stage one produces
// the base population, stage two the encounters and diagnoses, stage three
// the clinical event streams. Stages two and three fan out across workers
// over disjoint ID ranges; every worker reseeds deterministically from the
// global seed plus its range offset, so output depends only on (seed,
// workers), never on scheduling.
package pipeline

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/dariyanisacc/healthcare-sql-project/internal/gen"
	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
)

// Config carries the generation parameters shared by all stages.
type Config struct {
	Seed        int64
	Patients    int
	Providers   int
	Units       int
	Medications int
	Workers     int
	Now         time.Time
	Res         Reservations
	Log         zerolog.Logger
}

// BaseData is the stage-one output.
type BaseData struct {
	Patients    []model.Patient
	Providers   []model.Provider
	Units       []model.Unit
	Medications []model.Medication
	Allergies   []model.Allergy
}

// EncounterData is the stage-two output, sorted by primary key.
type EncounterData struct {
	Encounters []model.Encounter
	Diagnoses  []model.Diagnosis
}

// ClinicalData is the stage-three output, sorted by primary key.
type ClinicalData struct {
	Admins      []model.MedicationAdministration
	Labs        []model.LabResult
	Vitals      []model.VitalSign
	Assessments []model.NursingAssessment
}

// GenerateBase produces the base population from a single stream seeded
// with the global seed. The base stage is small enough that partitioning
// it buys nothing.
func (c Config) GenerateBase() (BaseData, error) {
	rng := rand.New(rand.NewSource(c.Seed))

	c.Log.Info().Int("patients", c.Patients).Int("providers", c.Providers).
		Int("medications", c.Medications).Msg("generating base population")

	base := BaseData{
		Patients:    gen.Patients(rng, 1, c.Patients, c.Now),
		Providers:   gen.Providers(rng, 1, c.Providers, c.Now),
		Units:       gen.Units(rng),
		Medications: gen.Medications(rng, c.Medications),
	}
	base.Allergies = gen.Allergies(rng, 1, c.Patients, c.Providers, 1, c.Now)

	if err := auditBlock("allergy", 0, len(base.Allergies), c.Patients*c.Res.AllergiesPerPatient); err != nil {
		return BaseData{}, err
	}
	return base, nil
}
