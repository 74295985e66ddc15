// Package catalog holds the static reference tables the generators draw
// from: ICD-10 diagnosis codes, LOINC lab tests, the medication formulary
// seed list, hospital unit types, and allergen definitions. Pure data.
package catalog

// DiagnosisCode is an ICD-10 catalog entry.
type DiagnosisCode struct {
	ICD10       string
	Description string
}

// LabTest is a LOINC catalog entry with its reference range.
type LabTest struct {
	LOINC    string
	Name     string
	Category string
	Unit     string
	Low      float64
	High     float64
}

// MedicationEntry is a canonical formulary entry. Schedule is empty for
// non-controlled substances.
type MedicationEntry struct {
	Name     string
	Generic  string
	Brand    string
	Class    string
	Schedule string
	Route    string
	Form     string
}

// UnitType describes a hospital unit and its bed count.
type UnitType struct {
	Code string
	Name string
	Beds int
}

// AllergenEntry describes a known allergen with its typical reaction.
type AllergenEntry struct {
	Allergen string
	Type     string
	Reaction string
	Severity string
}

// Diagnoses is the ICD-10 code pool encounters sample from.
var Diagnoses = []DiagnosisCode{
	{"I10", "Essential (primary) hypertension"},
	{"E11.9", "Type 2 diabetes mellitus without complications"},
	{"J44.1", "Chronic obstructive pulmonary disease with acute exacerbation"},
	{"N18.3", "Chronic kidney disease, stage 3"},
	{"I50.9", "Heart failure, unspecified"},
	{"J18.9", "Pneumonia, unspecified organism"},
	{"A41.9", "Sepsis, unspecified organism"},
	{"N39.0", "Urinary tract infection, site not specified"},
	{"K92.2", "Gastrointestinal hemorrhage, unspecified"},
	{"I21.9", "Acute myocardial infarction, unspecified"},
	{"I63.9", "Cerebral infarction, unspecified"},
	{"E87.6", "Hypokalemia"},
	{"D64.9", "Anemia, unspecified"},
	{"F32.9", "Major depressive disorder, single episode"},
	{"M79.3", "Myalgia"},
	{"R50.9", "Fever, unspecified"},
	{"R06.02", "Shortness of breath"},
	{"R07.9", "Chest pain, unspecified"},
	{"R42", "Dizziness and giddiness"},
	{"G93.1", "Anoxic brain damage, not elsewhere classified"},
}

// LabTests is the LOINC test pool. The first 8 entries form the basic
// metabolic panel drawn daily; entries 10-14 form the CBC drawn every
// other day.
var LabTests = []LabTest{
	{"2160-0", "Creatinine", "Chemistry", "mg/dL", 0.6, 1.2},
	{"2823-3", "Potassium", "Chemistry", "mEq/L", 3.5, 5.0},
	{"2951-2", "Sodium", "Chemistry", "mEq/L", 136, 145},
	{"2028-9", "CO2", "Chemistry", "mEq/L", 22, 28},
	{"1742-6", "ALT", "Chemistry", "U/L", 10, 40},
	{"1920-8", "AST", "Chemistry", "U/L", 10, 34},
	{"1975-2", "Bilirubin Total", "Chemistry", "mg/dL", 0.3, 1.2},
	{"2085-9", "HDL Cholesterol", "Chemistry", "mg/dL", 40, 60},
	{"2093-3", "Cholesterol Total", "Chemistry", "mg/dL", 100, 200},
	{"2571-8", "Triglycerides", "Chemistry", "mg/dL", 50, 150},
	{"789-8", "Erythrocytes", "Hematology", "x10^6/uL", 4.2, 5.4},
	{"6690-2", "WBC", "Hematology", "x10^3/uL", 4.5, 11.0},
	{"777-3", "Platelets", "Hematology", "x10^3/uL", 150, 400},
	{"718-7", "Hemoglobin", "Hematology", "g/dL", 12.0, 16.0},
	{"4544-3", "Hematocrit", "Hematology", "%", 36, 46},
	{"1988-5", "CRP", "Immunology", "mg/L", 0, 3},
	{"2532-0", "LDH", "Chemistry", "U/L", 140, 280},
	{"2345-7", "Glucose", "Chemistry", "mg/dL", 70, 110},
	{"6768-6", "Alkaline Phosphatase", "Chemistry", "U/L", 44, 147},
	{"1759-0", "Albumin", "Chemistry", "g/dL", 3.5, 5.0},
}

// BMPSize and CBC bounds slice LabTests into the daily and alternating
// panels.
const (
	BMPSize  = 8
	CBCStart = 10
	CBCEnd   = 15
)

// Formulary is the canonical medication list. Entries beyond this list are
// synthesized by the medication generator.
var Formulary = []MedicationEntry{
	{"Acetaminophen", "Acetaminophen", "Tylenol", "Analgesic", "", "PO", "tablet"},
	{"Aspirin", "Aspirin", "Bayer", "Antiplatelet", "", "PO", "tablet"},
	{"Atorvastatin", "Atorvastatin", "Lipitor", "Statin", "", "PO", "tablet"},
	{"Metoprolol", "Metoprolol", "Lopressor", "Beta Blocker", "", "PO", "tablet"},
	{"Lisinopril", "Lisinopril", "Prinivil", "ACE Inhibitor", "", "PO", "tablet"},
	{"Furosemide", "Furosemide", "Lasix", "Loop Diuretic", "", "IV", "injection"},
	{"Warfarin", "Warfarin", "Coumadin", "Anticoagulant", "", "PO", "tablet"},
	{"Insulin Regular", "Insulin Regular", "Humulin R", "Insulin", "", "SubQ", "injection"},
	{"Morphine", "Morphine", "MS Contin", "Opioid", "II", "IV", "injection"},
	{"Fentanyl", "Fentanyl", "Sublimaze", "Opioid", "II", "IV", "injection"},
	{"Midazolam", "Midazolam", "Versed", "Benzodiazepine", "IV", "IV", "injection"},
	{"Propofol", "Propofol", "Diprivan", "Anesthetic", "", "IV", "injection"},
	{"Vancomycin", "Vancomycin", "Vancocin", "Antibiotic", "", "IV", "injection"},
	{"Piperacillin-Tazobactam", "Piperacillin-Tazobactam", "Zosyn", "Antibiotic", "", "IV", "injection"},
	{"Ceftriaxone", "Ceftriaxone", "Rocephin", "Antibiotic", "", "IV", "injection"},
	{"Heparin", "Heparin", "Heparin", "Anticoagulant", "", "SubQ", "injection"},
	{"Enoxaparin", "Enoxaparin", "Lovenox", "Anticoagulant", "", "SubQ", "injection"},
	{"Omeprazole", "Omeprazole", "Prilosec", "Proton Pump Inhibitor", "", "PO", "capsule"},
	{"Ondansetron", "Ondansetron", "Zofran", "Antiemetic", "", "IV", "injection"},
	{"Metformin", "Metformin", "Glucophage", "Antidiabetic", "", "PO", "tablet"},
}

// HighAlert marks formulary names that require independent double checks.
var HighAlert = map[string]bool{
	"Insulin Regular": true,
	"Heparin":         true,
	"Warfarin":        true,
	"Morphine":        true,
	"Fentanyl":        true,
}

// Units is the fixed hospital unit roster.
var Units = []UnitType{
	{"ICU", "Intensive Care Unit", 20},
	{"MICU", "Medical ICU", 16},
	{"SICU", "Surgical ICU", 16},
	{"CCU", "Cardiac Care Unit", 12},
	{"ED", "Emergency Department", 30},
	{"PACU", "Post-Anesthesia Care Unit", 10},
	{"OR", "Operating Room", 8},
	{"L&D", "Labor & Delivery", 15},
	{"NICU", "Neonatal ICU", 20},
	{"MS1", "Medical Surgical 1", 30},
	{"MS2", "Medical Surgical 2", 30},
	{"MS3", "Medical Surgical 3", 30},
	{"TELE", "Telemetry", 24},
	{"ONCO", "Oncology", 20},
	{"ORTHO", "Orthopedics", 25},
}

// Allergens is the fixed allergen pool sampled without replacement.
var Allergens = []AllergenEntry{
	{"Penicillin", "Drug", "Rash", "Moderate"},
	{"Sulfa", "Drug", "Hives", "Moderate"},
	{"Morphine", "Drug", "Nausea", "Mild"},
	{"Aspirin", "Drug", "GI upset", "Mild"},
	{"Iodine", "Drug", "Anaphylaxis", "Life-threatening"},
	{"Peanuts", "Food", "Anaphylaxis", "Life-threatening"},
	{"Shellfish", "Food", "Hives", "Moderate"},
	{"Eggs", "Food", "GI upset", "Mild"},
	{"Latex", "Environmental", "Rash", "Moderate"},
	{"Bee stings", "Environmental", "Swelling", "Severe"},
}

var Specialties = []string{
	"Internal Medicine", "Emergency Medicine", "Critical Care", "Cardiology",
	"Pulmonology", "Nephrology", "Gastroenterology", "Neurology", "Surgery",
	"Orthopedics", "Anesthesiology", "Nursing", "Pharmacy",
}

var ChiefComplaints = []string{
	"Chest pain", "Shortness of breath", "Abdominal pain", "Fever",
	"Headache", "Back pain", "Dizziness", "Nausea and vomiting",
	"Weakness", "Cough", "Altered mental status", "Fall",
	"Syncope", "Palpitations", "Leg swelling", "Difficulty urinating",
}

var AdmissionSources = []string{
	"Emergency Department", "Direct Admission", "Transfer from Hospital",
	"Physician Referral", "Walk-in", "Transfer from SNF",
}

var DischargeDispositions = []string{
	"Home", "Home with Home Health", "Skilled Nursing Facility",
	"Rehabilitation Facility", "Transferred to Hospital",
	"Left Against Medical Advice", "Expired", "Hospice",
}

var ProviderTitles = []string{"MD", "DO", "NP", "PA", "RN", "PharmD"}

var Departments = []string{"Medicine", "Surgery", "Emergency", "ICU", "Pediatrics"}

var Races = []string{"White", "Black", "Asian", "Hispanic", "Other"}

var Ethnicities = []string{"Hispanic", "Non-Hispanic"}

var Languages = []string{"English", "Spanish", "Chinese", "Vietnamese", "Arabic"}

var ContactRelationships = []string{"Spouse", "Parent", "Child", "Sibling", "Friend"}

var Insurers = []string{"Blue Cross", "Aetna", "UnitedHealth", "Cigna", "Medicare", "Medicaid"}

var Floors = []string{"1", "2", "3", "4", "5", "B", "G"}

var Buildings = []string{"Main", "North", "South", "East", "West"}

// Medication-administration vocabulary.
var (
	Doses       = []string{"325 mg", "500 mg", "1 g", "5 mg", "10 mg", "20 mg", "40 mg", "80 mg", "100 mg"}
	Frequencies = []string{"Daily", "BID", "TID", "QID", "Q6H", "Q8H", "Q12H", "PRN", "STAT"}
	Routes      = []string{"PO", "IV", "IM", "SubQ", "Topical", "PR", "SL"}
)

// TimesPerDay maps scheduled frequencies to administration slots. PRN and
// STAT are unscheduled and handled by the generator.
var TimesPerDay = map[string]int{
	"Daily": 1, "BID": 2, "TID": 3, "QID": 4,
	"Q6H": 4, "Q8H": 3, "Q12H": 2,
}

// Nursing-assessment vocabulary. Repeated entries weight the draw.
var (
	ConsciousnessLevels = []string{"Alert", "Alert", "Alert", "Confused", "Lethargic"}
	Orientations        = []string{"Person, Place, Time", "Person, Place", "Person", "Confused"}
	ActivityLevels      = []string{"Ambulatory", "Ambulatory with assistance", "Chair", "Bedrest"}
	FallRiskLevels      = []string{"Low", "Moderate", "High"}
	SkinIntegrity       = []string{"Intact", "Intact", "Intact", "Impaired"}
	AssistiveDevices    = []string{"", "", "Walker", "Cane"}
	ShiftNotes          = []string{"stable", "improving", "no acute distress"}
)

// Vital-sign vocabulary.
var (
	Positions       = []string{"Sitting", "Supine", "Standing"}
	OxygenDelivery  = []string{"Nasal Cannula", "Face Mask"}
	OxygenFlowRates = []int{2, 4, 6}
	PainScale       = []int{0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8}
	BedNumbers      = []string{"A", "B", "1", "2"}
)

// Synthesized-medication word parts.
var (
	MedStems = []string{
		"Flora", "Vira", "Cardi", "Neuro", "Pulmo", "Gastro", "Hema", "Derma",
		"Lipo", "Gluco", "Rena", "Hepa", "Osteo", "Myo", "Cysto", "Thermo",
		"Vaso", "Broncho", "Cereb", "Endo",
	}
	MedSuffixes   = []string{"azole", "mycin", "cillin", "pril", "olol"}
	BrandSuffixes = []string{"ex", "in", "ol", "an"}
	MedClasses    = []string{"Antibiotic", "Analgesic", "Antihypertensive", "Anticoagulant"}
	MedRoutes     = []string{"PO", "IV", "IM", "SubQ", "Topical"}
	MedForms      = []string{"tablet", "capsule", "injection", "cream", "solution"}
)
