package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dariyanisacc/healthcare-sql-project/internal/catalog"
	"github.com/dariyanisacc/healthcare-sql-project/internal/config"
	"github.com/dariyanisacc/healthcare-sql-project/internal/csvout"
	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
	"github.com/dariyanisacc/healthcare-sql-project/internal/pipeline"
)

type encounterFlags struct {
	patients    int
	patientsCSV string
	providers   int
	medications int
	seed        int64
	workers     int
	outDir      string

	encMult    int
	diagMult   int
	adminMult  int
	labMult    int
	vitalMult  int
	assessMult int
}

var encFlags encounterFlags

var encountersCmd = &cobra.Command{
	Use:   "encounters",
	Short: "Generate encounter and clinical event CSVs for an existing patient population",
	Long: `Generates encounters and diagnoses for the patient population, then the
clinical event streams (medication administrations, lab results, vital
signs, nursing assessments) for those encounters.

With --workers > 1 each stage partitions its input into contiguous ranges
and generates them concurrently. Output is identical for any run with the
same --seed and --workers; different worker counts produce different (but
equally valid) datasets.`,
	RunE: runEncounters,
}

func init() {
	rootCmd.AddCommand(encountersCmd)

	defaults := config.Load()
	res := pipeline.DefaultReservations()
	encountersCmd.Flags().IntVar(&encFlags.patients, "patients", 0, "Patient population size (default: counted from the patients CSV)")
	encountersCmd.Flags().StringVar(&encFlags.patientsCSV, "patients-csv", "", "Patients CSV from a previous generate run (default: <out>/patients.csv)")
	encountersCmd.Flags().IntVar(&encFlags.providers, "providers", defaults.Providers, "Provider population size (or GEN_PROVIDERS env)")
	encountersCmd.Flags().IntVar(&encFlags.medications, "medications", defaults.Medications, "Formulary size (or GEN_MEDICATIONS env)")
	encountersCmd.Flags().Int64Var(&encFlags.seed, "seed", defaults.Seed, "Random seed (or GEN_SEED env)")
	encountersCmd.Flags().IntVarP(&encFlags.workers, "workers", "w", defaults.Workers, "Worker count; 1 runs sequentially (or GEN_WORKERS env)")
	encountersCmd.Flags().StringVarP(&encFlags.outDir, "out", "o", defaults.OutDir, "Output directory for CSV files (or GEN_OUT_DIR env)")

	encountersCmd.Flags().IntVar(&encFlags.encMult, "reserve-encounters", res.EncountersPerPatient, "Encounter IDs reserved per patient")
	encountersCmd.Flags().IntVar(&encFlags.diagMult, "reserve-diagnoses", res.DiagnosesPerPatient, "Diagnosis IDs reserved per patient")
	encountersCmd.Flags().IntVar(&encFlags.adminMult, "reserve-admins", res.AdminsPerEncounter, "Medication administration IDs reserved per encounter")
	encountersCmd.Flags().IntVar(&encFlags.labMult, "reserve-labs", res.LabsPerEncounter, "Lab result IDs reserved per encounter")
	encountersCmd.Flags().IntVar(&encFlags.vitalMult, "reserve-vitals", res.VitalsPerEncounter, "Vital sign IDs reserved per encounter")
	encountersCmd.Flags().IntVar(&encFlags.assessMult, "reserve-assessments", res.AssessmentsPerEncounter, "Nursing assessment IDs reserved per encounter")
}

func runEncounters(cmd *cobra.Command, args []string) error {
	start := time.Now()
	out := encFlags.outDir

	patients := encFlags.patients
	if patients == 0 {
		csvPath := encFlags.patientsCSV
		if csvPath == "" {
			csvPath = filepath.Join(out, "patients.csv")
		}
		n, err := csvout.CountRows(csvPath)
		if err != nil {
			return fmt.Errorf("count patients: %w (run generate first, or pass --patients)", err)
		}
		patients = n
	}
	if patients <= 0 {
		return fmt.Errorf("no patients to generate encounters for")
	}

	summary := newRunSummary("encounters", encFlags.seed, encFlags.workers, start)

	res := pipeline.Reservations{
		EncountersPerPatient:    encFlags.encMult,
		DiagnosesPerPatient:     encFlags.diagMult,
		AllergiesPerPatient:     pipeline.DefaultReservations().AllergiesPerPatient,
		AdminsPerEncounter:      encFlags.adminMult,
		LabsPerEncounter:        encFlags.labMult,
		VitalsPerEncounter:      encFlags.vitalMult,
		AssessmentsPerEncounter: encFlags.assessMult,
	}

	pcfg := pipeline.Config{
		Seed:        encFlags.seed,
		Patients:    patients,
		Providers:   encFlags.providers,
		Units:       len(catalog.Units),
		Medications: encFlags.medications,
		Workers:     encFlags.workers,
		Now:         start,
		Res:         res,
		Log:         logger,
	}

	encData, err := pcfg.GenerateEncounters()
	if err != nil {
		return err
	}
	if err := csvout.Write(filepath.Join(out, "encounters.csv"), model.EncounterHeader, encData.Encounters); err != nil {
		return err
	}
	if err := csvout.Write(filepath.Join(out, "diagnoses.csv"), model.DiagnosisHeader, encData.Diagnoses); err != nil {
		return err
	}

	clin, err := pcfg.GenerateClinical(encData.Encounters)
	if err != nil {
		return err
	}
	if err := csvout.Write(filepath.Join(out, "medication_administrations.csv"), model.MedicationAdministrationHeader, clin.Admins); err != nil {
		return err
	}
	if err := csvout.Write(filepath.Join(out, "lab_results.csv"), model.LabResultHeader, clin.Labs); err != nil {
		return err
	}
	if err := csvout.Write(filepath.Join(out, "vital_signs.csv"), model.VitalSignHeader, clin.Vitals); err != nil {
		return err
	}
	if err := csvout.Write(filepath.Join(out, "nursing_assessments.csv"), model.NursingAssessmentHeader, clin.Assessments); err != nil {
		return err
	}

	summary.Rows["encounters"] = len(encData.Encounters)
	summary.Rows["diagnoses"] = len(encData.Diagnoses)
	summary.Rows["medication_administrations"] = len(clin.Admins)
	summary.Rows["lab_results"] = len(clin.Labs)
	summary.Rows["vital_signs"] = len(clin.Vitals)
	summary.Rows["nursing_assessments"] = len(clin.Assessments)
	summary.finish()

	if err := writeSummaryJSON(summary, filepath.Join(out, "encounters_summary.json")); err != nil {
		logger.Warn().Err(err).Msg("failed to write JSON summary")
	}
	if err := writeSummaryCSV(summary, filepath.Join(out, "encounters_summary.csv")); err != nil {
		logger.Warn().Err(err).Msg("failed to write CSV summary")
	}
	printSummary(summary)
	return nil
}
