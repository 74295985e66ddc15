package cmd

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dariyanisacc/healthcare-sql-project/internal/catalog"
	"github.com/dariyanisacc/healthcare-sql-project/internal/config"
	"github.com/dariyanisacc/healthcare-sql-project/internal/csvout"
	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
	"github.com/dariyanisacc/healthcare-sql-project/internal/pipeline"
)

type generateFlags struct {
	patients    int
	providers   int
	medications int
	seed        int64
	outDir      string
	allergyMult int
}

var genFlags generateFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the base population CSVs (patients, providers, units, medications, allergies)",
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	defaults := config.Load()
	generateCmd.Flags().IntVar(&genFlags.patients, "patients", defaults.Patients, "Number of patients to generate (or GEN_PATIENTS env)")
	generateCmd.Flags().IntVar(&genFlags.providers, "providers", defaults.Providers, "Number of providers to generate (or GEN_PROVIDERS env)")
	generateCmd.Flags().IntVar(&genFlags.medications, "medications", defaults.Medications, "Formulary size (or GEN_MEDICATIONS env)")
	generateCmd.Flags().Int64Var(&genFlags.seed, "seed", defaults.Seed, "Random seed (or GEN_SEED env)")
	generateCmd.Flags().StringVarP(&genFlags.outDir, "out", "o", defaults.OutDir, "Output directory for CSV files (or GEN_OUT_DIR env)")
	generateCmd.Flags().IntVar(&genFlags.allergyMult, "reserve-allergies", pipeline.DefaultReservations().AllergiesPerPatient,
		"Allergy IDs reserved per patient")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	summary := newRunSummary("generate", genFlags.seed, 0, start)

	res := pipeline.DefaultReservations()
	res.AllergiesPerPatient = genFlags.allergyMult

	pcfg := pipeline.Config{
		Seed:        genFlags.seed,
		Patients:    genFlags.patients,
		Providers:   genFlags.providers,
		Units:       len(catalog.Units),
		Medications: genFlags.medications,
		Workers:     1,
		Now:         start,
		Res:         res,
		Log:         logger,
	}

	base, err := pcfg.GenerateBase()
	if err != nil {
		return err
	}

	out := genFlags.outDir
	if err := csvout.Write(filepath.Join(out, "patients.csv"), model.PatientHeader, base.Patients); err != nil {
		return err
	}
	if err := csvout.Write(filepath.Join(out, "providers.csv"), model.ProviderHeader, base.Providers); err != nil {
		return err
	}
	if err := csvout.Write(filepath.Join(out, "units.csv"), model.UnitHeader, base.Units); err != nil {
		return err
	}
	if err := csvout.Write(filepath.Join(out, "medications.csv"), model.MedicationHeader, base.Medications); err != nil {
		return err
	}
	if err := csvout.Write(filepath.Join(out, "allergies.csv"), model.AllergyHeader, base.Allergies); err != nil {
		return err
	}

	summary.Rows["patients"] = len(base.Patients)
	summary.Rows["providers"] = len(base.Providers)
	summary.Rows["units"] = len(base.Units)
	summary.Rows["medications"] = len(base.Medications)
	summary.Rows["patient_allergies"] = len(base.Allergies)
	summary.finish()

	if err := writeSummaryJSON(summary, filepath.Join(out, "generate_summary.json")); err != nil {
		logger.Warn().Err(err).Msg("failed to write JSON summary")
	}
	if err := writeSummaryCSV(summary, filepath.Join(out, "generate_summary.csv")); err != nil {
		logger.Warn().Err(err).Msg("failed to write CSV summary")
	}
	printSummary(summary)
	return nil
}
