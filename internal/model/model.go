// Package model defines the generated record types and their fixed CSV
// column order. Records are immutable once generated; Record methods encode
// a row in the same column order as the corresponding header.
package model

import (
	"strconv"
	"time"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

func fmtTime(t time.Time) string {
	return t.Format(timestampLayout)
}

func fmtTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

func fmtBool(b bool) string {
	return strconv.FormatBool(b)
}

func fmtInt(n int) string {
	return strconv.Itoa(n)
}

func fmtIntPtr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func fmtFloat(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}

func fmtFloatPtr(f *float64, prec int) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', prec, 64)
}

// Patient is one member of the synthetic population. MRN is unique across
// the whole population regardless of which worker produced the record.
type Patient struct {
	PatientID            int
	MRN                  string
	FirstName            string
	LastName             string
	MiddleName           string
	DateOfBirth          time.Time
	Sex                  string
	Race                 string
	Ethnicity            string
	PrimaryLanguage      string
	SSNLast4             string
	StreetAddress        string
	City                 string
	State                string
	ZipCode              string
	PhonePrimary         string
	PhoneSecondary       string
	Email                string
	EmergencyContactName string
	EmergencyContactRel  string
	EmergencyContactTel  string
	InsuranceProvider    string
	InsurancePolicy      string
	CreatedAt            time.Time
	IsActive             bool
}

var PatientHeader = []string{
	"patient_id", "mrn", "first_name", "last_name", "middle_name",
	"date_of_birth", "sex", "race", "ethnicity", "primary_language",
	"ssn_last4", "street_address", "city", "state", "zip_code",
	"phone_primary", "phone_secondary", "email", "emergency_contact_name",
	"emergency_contact_relationship", "emergency_contact_phone",
	"insurance_provider", "insurance_policy_number", "created_at", "is_active",
}

func (p Patient) Record() []string {
	return []string{
		fmtInt(p.PatientID), p.MRN, p.FirstName, p.LastName, p.MiddleName,
		fmtDate(p.DateOfBirth), p.Sex, p.Race, p.Ethnicity, p.PrimaryLanguage,
		p.SSNLast4, p.StreetAddress, p.City, p.State, p.ZipCode,
		p.PhonePrimary, p.PhoneSecondary, p.Email, p.EmergencyContactName,
		p.EmergencyContactRel, p.EmergencyContactTel,
		p.InsuranceProvider, p.InsurancePolicy, fmtTime(p.CreatedAt), fmtBool(p.IsActive),
	}
}

// Provider is a clinician. NPI is unique globally.
type Provider struct {
	ProviderID int
	NPI        string
	FirstName  string
	LastName   string
	MiddleName string
	Title      string
	Specialty  string
	Department string
	Phone      string
	Email      string
	Pager      string
	HireDate   time.Time
	IsActive   bool
}

var ProviderHeader = []string{
	"provider_id", "npi", "first_name", "last_name", "middle_name", "title",
	"specialty", "department", "phone", "email", "pager", "hire_date", "is_active",
}

func (p Provider) Record() []string {
	return []string{
		fmtInt(p.ProviderID), p.NPI, p.FirstName, p.LastName, p.MiddleName,
		p.Title, p.Specialty, p.Department, p.Phone, p.Email, p.Pager,
		fmtDate(p.HireDate), fmtBool(p.IsActive),
	}
}

// Unit is a hospital unit. Fixed cardinality, no uniqueness hazard.
type Unit struct {
	UnitID    int
	UnitCode  string
	UnitName  string
	UnitType  string
	Floor     string
	Building  string
	Phone     string
	TotalBeds int
	IsActive  bool
}

var UnitHeader = []string{
	"unit_id", "unit_code", "unit_name", "unit_type", "floor", "building",
	"phone", "total_beds", "is_active",
}

func (u Unit) Record() []string {
	return []string{
		fmtInt(u.UnitID), u.UnitCode, u.UnitName, u.UnitType, u.Floor,
		u.Building, u.Phone, fmtInt(u.TotalBeds), fmtBool(u.IsActive),
	}
}

// Medication is a formulary entry. Schedule is empty for non-controlled
// substances.
type Medication struct {
	MedicationID int
	Name         string
	Generic      string
	Brand        string
	Class        string
	Schedule     string
	DefaultRoute string
	DefaultForm  string
	IsHighAlert  bool
	IsActive     bool
}

var MedicationHeader = []string{
	"medication_id", "medication_name", "generic_name", "brand_name",
	"medication_class", "controlled_substance_schedule", "default_route",
	"default_form", "is_high_alert", "is_active",
}

func (m Medication) Record() []string {
	return []string{
		fmtInt(m.MedicationID), m.Name, m.Generic, m.Brand, m.Class,
		m.Schedule, m.DefaultRoute, m.DefaultForm,
		fmtBool(m.IsHighAlert), fmtBool(m.IsActive),
	}
}

// Encounter statuses and types.
const (
	StatusActive     = "Active"
	StatusDischarged = "Discharged"

	TypeInpatient   = "Inpatient"
	TypeEmergency   = "Emergency"
	TypeOutpatient  = "Outpatient"
	TypeObservation = "Observation"
)

// Encounter is one hospital visit. DischargeDate is nil exactly when
// Status is Active.
type Encounter struct {
	EncounterID          int
	PatientID            int
	EncounterNumber      string
	EncounterType        string
	AdmitDate            time.Time
	DischargeDate        *time.Time
	AdmittingProviderID  int
	AttendingProviderID  int
	CurrentUnitID        int
	RoomNumber           string
	BedNumber            string
	ChiefComplaint       string
	AdmissionSource      string
	DischargeDisposition string
	Status               string
	CreatedAt            time.Time
}

var EncounterHeader = []string{
	"encounter_id", "patient_id", "encounter_number", "encounter_type",
	"admit_date", "discharge_date", "admitting_provider_id",
	"attending_provider_id", "current_unit_id", "room_number", "bed_number",
	"chief_complaint", "admission_source", "discharge_disposition",
	"encounter_status", "created_at",
}

func (e Encounter) Record() []string {
	return []string{
		fmtInt(e.EncounterID), fmtInt(e.PatientID), e.EncounterNumber,
		e.EncounterType, fmtTime(e.AdmitDate), fmtTimePtr(e.DischargeDate),
		fmtInt(e.AdmittingProviderID), fmtInt(e.AttendingProviderID),
		fmtInt(e.CurrentUnitID), e.RoomNumber, e.BedNumber, e.ChiefComplaint,
		e.AdmissionSource, e.DischargeDisposition, e.Status, fmtTime(e.CreatedAt),
	}
}

// Diagnosis belongs to exactly one encounter. Exactly one diagnosis per
// encounter carries Type Primary.
type Diagnosis struct {
	DiagnosisID   int
	EncounterID   int
	ICD10Code     string
	Description   string
	Type          string
	DiagnosedDate time.Time
	DiagnosedByID int
	IsResolved    bool
	ResolvedDate  *time.Time
}

var DiagnosisHeader = []string{
	"diagnosis_id", "encounter_id", "icd10_code", "diagnosis_description",
	"diagnosis_type", "diagnosed_date", "diagnosed_by_provider_id",
	"is_resolved", "resolved_date",
}

func (d Diagnosis) Record() []string {
	return []string{
		fmtInt(d.DiagnosisID), fmtInt(d.EncounterID), d.ICD10Code,
		d.Description, d.Type, fmtTime(d.DiagnosedDate), fmtInt(d.DiagnosedByID),
		fmtBool(d.IsResolved), fmtTimePtr(d.ResolvedDate),
	}
}

// MedicationAdministration is one scheduled dose of a medication during a
// discharged encounter.
type MedicationAdministration struct {
	AdminID         int
	EncounterID     int
	MedicationID    int
	OrderedDose     string
	OrderedUnit     string
	OrderedRoute    string
	OrderedFreq     string
	AdminDate       time.Time
	AdminDose       string
	AdminUnit       string
	AdminRoute      string
	AdminSite       string
	OrderingID      int
	AdministeringID int
	Status          string
	HoldReason      string
	CreatedAt       time.Time
}

var MedicationAdministrationHeader = []string{
	"admin_id", "encounter_id", "medication_id", "ordered_dose",
	"ordered_unit", "ordered_route", "ordered_frequency", "admin_date",
	"admin_dose", "admin_unit", "admin_route", "admin_site",
	"ordering_provider_id", "administering_provider_id", "admin_status",
	"hold_reason", "created_at",
}

func (m MedicationAdministration) Record() []string {
	return []string{
		fmtInt(m.AdminID), fmtInt(m.EncounterID), fmtInt(m.MedicationID),
		m.OrderedDose, m.OrderedUnit, m.OrderedRoute, m.OrderedFreq,
		fmtTime(m.AdminDate), m.AdminDose, m.AdminUnit, m.AdminRoute,
		m.AdminSite, fmtInt(m.OrderingID), fmtInt(m.AdministeringID),
		m.Status, m.HoldReason, fmtTime(m.CreatedAt),
	}
}

// Abnormal flags assigned to lab results.
const (
	FlagNormal       = "Normal"
	FlagHigh         = "High"
	FlagLow          = "Low"
	FlagCriticalHigh = "Critical High"
	FlagCriticalLow  = "Critical Low"
)

// LabResult is a single resulted lab test during an Inpatient or Emergency
// encounter.
type LabResult struct {
	LabID         int
	EncounterID   int
	LOINCCode     string
	TestName      string
	TestCategory  string
	ResultValue   string
	ResultUnit    string
	ResultStatus  string
	AbnormalFlag  string
	RefRangeLow   float64
	RefRangeHigh  float64
	CollectedDate time.Time
	ResultedDate  time.Time
	OrderingID    int
	CreatedAt     time.Time
}

var LabResultHeader = []string{
	"lab_id", "encounter_id", "loinc_code", "test_name", "test_category",
	"result_value", "result_unit", "result_status", "abnormal_flag",
	"reference_range_low", "reference_range_high", "collected_date",
	"resulted_date", "ordering_provider_id", "created_at",
}

func (l LabResult) Record() []string {
	return []string{
		fmtInt(l.LabID), fmtInt(l.EncounterID), l.LOINCCode, l.TestName,
		l.TestCategory, l.ResultValue, l.ResultUnit, l.ResultStatus,
		l.AbnormalFlag, fmtFloat(l.RefRangeLow, 2), fmtFloat(l.RefRangeHigh, 2),
		fmtTime(l.CollectedDate), fmtTime(l.ResultedDate), fmtInt(l.OrderingID),
		fmtTime(l.CreatedAt),
	}
}

// VitalSign is one set of vital signs. Weight, height and BMI are recorded
// only on the admission reading.
type VitalSign struct {
	VitalID        int
	EncounterID    int
	TemperatureF   float64
	HeartRate      int
	RespRate       int
	BPSystolic     int
	BPDiastolic    int
	OxygenSat      int
	PainScale      int
	WeightKg       *float64
	HeightCm       *float64
	BMI            *float64
	Position       string
	OxygenDelivery string
	OxygenFlowRate *int
	RecordedDate   time.Time
	RecordedByID   int
}

var VitalSignHeader = []string{
	"vital_id", "encounter_id", "temperature_f", "heart_rate",
	"respiratory_rate", "blood_pressure_systolic", "blood_pressure_diastolic",
	"oxygen_saturation", "pain_scale", "weight_kg", "height_cm", "bmi",
	"position", "oxygen_delivery", "oxygen_flow_rate", "recorded_date",
	"recorded_by_provider_id",
}

func (v VitalSign) Record() []string {
	return []string{
		fmtInt(v.VitalID), fmtInt(v.EncounterID), fmtFloat(v.TemperatureF, 1),
		fmtInt(v.HeartRate), fmtInt(v.RespRate), fmtInt(v.BPSystolic),
		fmtInt(v.BPDiastolic), fmtInt(v.OxygenSat), fmtInt(v.PainScale),
		fmtFloatPtr(v.WeightKg, 1), fmtFloatPtr(v.HeightCm, 1),
		fmtFloatPtr(v.BMI, 1), v.Position, v.OxygenDelivery,
		fmtIntPtr(v.OxygenFlowRate), fmtTime(v.RecordedDate), fmtInt(v.RecordedByID),
	}
}

// NursingAssessment is an admission or 12-hourly shift assessment.
type NursingAssessment struct {
	AssessmentID    int
	EncounterID     int
	AssessmentDate  time.Time
	AssessmentType  string
	Consciousness   string
	Orientation     string
	FallRiskScore   int
	FallRiskLevel   string
	BedAlarmOn      bool
	RestraintsInUse bool
	SkinIntegrity   string
	PressureUlcer   bool
	BradenScore     int
	ActivityLevel   string
	GaitSteady      bool
	AssistiveDevice string
	Notes           string
	AssessingID     int
	CreatedAt       time.Time
}

var NursingAssessmentHeader = []string{
	"assessment_id", "encounter_id", "assessment_date", "assessment_type",
	"level_of_consciousness", "orientation", "fall_risk_score",
	"fall_risk_level", "bed_alarm_on", "restraints_in_use", "skin_integrity",
	"pressure_ulcer_present", "braden_score", "activity_level", "gait_steady",
	"assistive_device", "assessment_notes", "assessing_provider_id", "created_at",
}

func (n NursingAssessment) Record() []string {
	return []string{
		fmtInt(n.AssessmentID), fmtInt(n.EncounterID), fmtTime(n.AssessmentDate),
		n.AssessmentType, n.Consciousness, n.Orientation, fmtInt(n.FallRiskScore),
		n.FallRiskLevel, fmtBool(n.BedAlarmOn), fmtBool(n.RestraintsInUse),
		n.SkinIntegrity, fmtBool(n.PressureUlcer), fmtInt(n.BradenScore),
		n.ActivityLevel, fmtBool(n.GaitSteady), n.AssistiveDevice, n.Notes,
		fmtInt(n.AssessingID), fmtTime(n.CreatedAt),
	}
}

// Allergy belongs to one patient; roughly 30% of patients carry 1-3.
type Allergy struct {
	AllergyID    int
	PatientID    int
	Allergen     string
	AllergyType  string
	Reaction     string
	Severity     string
	OnsetDate    time.Time
	ReportedDate time.Time
	ReportedByID int
	IsActive     bool
}

var AllergyHeader = []string{
	"allergy_id", "patient_id", "allergen", "allergy_type", "reaction",
	"severity", "onset_date", "reported_date", "reported_by_provider_id",
	"is_active",
}

func (a Allergy) Record() []string {
	return []string{
		fmtInt(a.AllergyID), fmtInt(a.PatientID), a.Allergen, a.AllergyType,
		a.Reaction, a.Severity, fmtDate(a.OnsetDate), fmtTime(a.ReportedDate),
		fmtInt(a.ReportedByID), fmtBool(a.IsActive),
	}
}
