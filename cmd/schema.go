package cmd

import "github.com/dariyanisacc/healthcare-sql-project/internal/model"

// schemaDDL creates the clinical schema in dependency order. The load
// command drops and recreates everything, so a reload is always a clean
// slate.
var schemaDDL = []string{
	`DROP TABLE IF EXISTS nursing_assessments, vital_signs, lab_results,
		medication_administrations, diagnoses, patient_allergies, encounters,
		medications, units, providers, patients CASCADE`,

	`CREATE TABLE patients (
		patient_id INT PRIMARY KEY,
		mrn VARCHAR(20) UNIQUE NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		middle_name TEXT,
		date_of_birth DATE NOT NULL,
		sex CHAR(1) NOT NULL,
		race TEXT,
		ethnicity TEXT,
		primary_language TEXT,
		ssn_last4 CHAR(4),
		street_address TEXT,
		city TEXT,
		state CHAR(2),
		zip_code CHAR(5),
		phone_primary TEXT,
		phone_secondary TEXT,
		email TEXT,
		emergency_contact_name TEXT,
		emergency_contact_relationship TEXT,
		emergency_contact_phone TEXT,
		insurance_provider TEXT,
		insurance_policy_number TEXT,
		created_at TIMESTAMP NOT NULL,
		is_active BOOLEAN NOT NULL
	)`,

	`CREATE TABLE providers (
		provider_id INT PRIMARY KEY,
		npi CHAR(10) UNIQUE NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		middle_name TEXT,
		title TEXT,
		specialty TEXT,
		department TEXT,
		phone TEXT,
		email TEXT,
		pager TEXT,
		hire_date DATE,
		is_active BOOLEAN NOT NULL
	)`,

	`CREATE TABLE units (
		unit_id INT PRIMARY KEY,
		unit_code TEXT UNIQUE NOT NULL,
		unit_name TEXT NOT NULL,
		unit_type TEXT,
		floor TEXT,
		building TEXT,
		phone TEXT,
		total_beds INT,
		is_active BOOLEAN NOT NULL
	)`,

	`CREATE TABLE medications (
		medication_id INT PRIMARY KEY,
		medication_name TEXT NOT NULL,
		generic_name TEXT,
		brand_name TEXT,
		medication_class TEXT,
		controlled_substance_schedule TEXT,
		default_route TEXT,
		default_form TEXT,
		is_high_alert BOOLEAN NOT NULL,
		is_active BOOLEAN NOT NULL
	)`,

	`CREATE TABLE encounters (
		encounter_id INT PRIMARY KEY,
		patient_id INT NOT NULL REFERENCES patients(patient_id),
		encounter_number TEXT UNIQUE NOT NULL,
		encounter_type TEXT NOT NULL,
		admit_date TIMESTAMP NOT NULL,
		discharge_date TIMESTAMP,
		admitting_provider_id INT REFERENCES providers(provider_id),
		attending_provider_id INT REFERENCES providers(provider_id),
		current_unit_id INT REFERENCES units(unit_id),
		room_number TEXT,
		bed_number TEXT,
		chief_complaint TEXT,
		admission_source TEXT,
		discharge_disposition TEXT,
		encounter_status TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		CHECK ((encounter_status = 'Active') = (discharge_date IS NULL))
	)`,

	`CREATE TABLE patient_allergies (
		allergy_id INT PRIMARY KEY,
		patient_id INT NOT NULL REFERENCES patients(patient_id),
		allergen TEXT NOT NULL,
		allergy_type TEXT,
		reaction TEXT,
		severity TEXT,
		onset_date DATE,
		reported_date TIMESTAMP,
		reported_by_provider_id INT REFERENCES providers(provider_id),
		is_active BOOLEAN NOT NULL
	)`,

	`CREATE TABLE diagnoses (
		diagnosis_id INT PRIMARY KEY,
		encounter_id INT NOT NULL REFERENCES encounters(encounter_id),
		icd10_code TEXT NOT NULL,
		diagnosis_description TEXT,
		diagnosis_type TEXT NOT NULL,
		diagnosed_date TIMESTAMP,
		diagnosed_by_provider_id INT REFERENCES providers(provider_id),
		is_resolved BOOLEAN NOT NULL,
		resolved_date TIMESTAMP
	)`,

	`CREATE TABLE medication_administrations (
		admin_id INT PRIMARY KEY,
		encounter_id INT NOT NULL REFERENCES encounters(encounter_id),
		medication_id INT NOT NULL REFERENCES medications(medication_id),
		ordered_dose TEXT,
		ordered_unit TEXT,
		ordered_route TEXT,
		ordered_frequency TEXT,
		admin_date TIMESTAMP NOT NULL,
		admin_dose TEXT,
		admin_unit TEXT,
		admin_route TEXT,
		admin_site TEXT,
		ordering_provider_id INT REFERENCES providers(provider_id),
		administering_provider_id INT REFERENCES providers(provider_id),
		admin_status TEXT NOT NULL,
		hold_reason TEXT,
		created_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE lab_results (
		lab_id INT PRIMARY KEY,
		encounter_id INT NOT NULL REFERENCES encounters(encounter_id),
		loinc_code TEXT NOT NULL,
		test_name TEXT NOT NULL,
		test_category TEXT,
		result_value TEXT,
		result_unit TEXT,
		result_status TEXT,
		abnormal_flag TEXT,
		reference_range_low NUMERIC,
		reference_range_high NUMERIC,
		collected_date TIMESTAMP NOT NULL,
		resulted_date TIMESTAMP,
		ordering_provider_id INT REFERENCES providers(provider_id),
		created_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE vital_signs (
		vital_id INT PRIMARY KEY,
		encounter_id INT NOT NULL REFERENCES encounters(encounter_id),
		temperature_f NUMERIC,
		heart_rate INT,
		respiratory_rate INT,
		blood_pressure_systolic INT,
		blood_pressure_diastolic INT,
		oxygen_saturation INT,
		pain_scale INT,
		weight_kg NUMERIC,
		height_cm NUMERIC,
		bmi NUMERIC,
		position TEXT,
		oxygen_delivery TEXT,
		oxygen_flow_rate INT,
		recorded_date TIMESTAMP NOT NULL,
		recorded_by_provider_id INT REFERENCES providers(provider_id)
	)`,

	`CREATE TABLE nursing_assessments (
		assessment_id INT PRIMARY KEY,
		encounter_id INT NOT NULL REFERENCES encounters(encounter_id),
		assessment_date TIMESTAMP NOT NULL,
		assessment_type TEXT NOT NULL,
		level_of_consciousness TEXT,
		orientation TEXT,
		fall_risk_score INT,
		fall_risk_level TEXT,
		bed_alarm_on BOOLEAN,
		restraints_in_use BOOLEAN,
		skin_integrity TEXT,
		pressure_ulcer_present BOOLEAN,
		braden_score INT,
		activity_level TEXT,
		gait_steady BOOLEAN,
		assistive_device TEXT,
		assessment_notes TEXT,
		assessing_provider_id INT REFERENCES providers(provider_id),
		created_at TIMESTAMP NOT NULL
	)`,

	`CREATE INDEX idx_encounters_patient ON encounters(patient_id)`,
	`CREATE INDEX idx_encounters_status ON encounters(encounter_status)`,
	`CREATE INDEX idx_diagnoses_encounter ON diagnoses(encounter_id)`,
	`CREATE INDEX idx_med_admins_encounter ON medication_administrations(encounter_id)`,
	`CREATE INDEX idx_labs_encounter ON lab_results(encounter_id)`,
	`CREATE INDEX idx_labs_flag ON lab_results(abnormal_flag)`,
	`CREATE INDEX idx_vitals_encounter ON vital_signs(encounter_id)`,
	`CREATE INDEX idx_assessments_encounter ON nursing_assessments(encounter_id)`,
}

// colKind drives CSV field to SQL value conversion during load. Nullable
// kinds map the empty string to NULL.
type colKind int

const (
	colText colKind = iota
	colInt
	colIntNull
	colFloat
	colFloatNull
	colBool
	colTime
	colTimeNull
	colDate
)

type tableSpec struct {
	name    string
	file    string
	columns []string
	kinds   []colKind
}

// tableSpecs lists the tables in foreign-key dependency order; columns
// match the CSV headers one to one.
var tableSpecs = []tableSpec{
	{
		name: "patients", file: "patients.csv", columns: model.PatientHeader,
		kinds: []colKind{
			colInt, colText, colText, colText, colText,
			colDate, colText, colText, colText, colText,
			colText, colText, colText, colText, colText,
			colText, colText, colText, colText, colText,
			colText, colText, colText, colTime, colBool,
		},
	},
	{
		name: "providers", file: "providers.csv", columns: model.ProviderHeader,
		kinds: []colKind{
			colInt, colText, colText, colText, colText, colText,
			colText, colText, colText, colText, colText, colDate, colBool,
		},
	},
	{
		name: "units", file: "units.csv", columns: model.UnitHeader,
		kinds: []colKind{
			colInt, colText, colText, colText, colText, colText,
			colText, colInt, colBool,
		},
	},
	{
		name: "medications", file: "medications.csv", columns: model.MedicationHeader,
		kinds: []colKind{
			colInt, colText, colText, colText, colText,
			colText, colText, colText, colBool, colBool,
		},
	},
	{
		name: "encounters", file: "encounters.csv", columns: model.EncounterHeader,
		kinds: []colKind{
			colInt, colInt, colText, colText, colTime, colTimeNull,
			colInt, colInt, colInt, colText, colText, colText,
			colText, colText, colText, colTime,
		},
	},
	{
		name: "patient_allergies", file: "allergies.csv", columns: model.AllergyHeader,
		kinds: []colKind{
			colInt, colInt, colText, colText, colText, colText,
			colDate, colTime, colInt, colBool,
		},
	},
	{
		name: "diagnoses", file: "diagnoses.csv", columns: model.DiagnosisHeader,
		kinds: []colKind{
			colInt, colInt, colText, colText, colText, colTime,
			colInt, colBool, colTimeNull,
		},
	},
	{
		name: "medication_administrations", file: "medication_administrations.csv",
		columns: model.MedicationAdministrationHeader,
		kinds: []colKind{
			colInt, colInt, colInt, colText, colText, colText, colText,
			colTime, colText, colText, colText, colText,
			colInt, colInt, colText, colText, colTime,
		},
	},
	{
		name: "lab_results", file: "lab_results.csv", columns: model.LabResultHeader,
		kinds: []colKind{
			colInt, colInt, colText, colText, colText,
			colText, colText, colText, colText,
			colFloat, colFloat, colTime, colTime, colInt, colTime,
		},
	},
	{
		name: "vital_signs", file: "vital_signs.csv", columns: model.VitalSignHeader,
		kinds: []colKind{
			colInt, colInt, colFloat, colInt, colInt, colInt, colInt,
			colInt, colInt, colFloatNull, colFloatNull, colFloatNull,
			colText, colText, colIntNull, colTime, colInt,
		},
	},
	{
		name: "nursing_assessments", file: "nursing_assessments.csv",
		columns: model.NursingAssessmentHeader,
		kinds: []colKind{
			colInt, colInt, colTime, colText, colText, colText,
			colInt, colText, colBool, colBool, colText, colBool,
			colInt, colText, colBool, colText, colText, colInt, colTime,
		},
	},
}
