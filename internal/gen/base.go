package gen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dariyanisacc/healthcare-sql-project/internal/catalog"
	"github.com/dariyanisacc/healthcare-sql-project/internal/model"
)

// MRN returns the medical record number for a patient ID. Identifiers are
// derived arithmetically from the ID rather than sampled, so any disjoint
// partitioning of the ID space yields globally unique MRNs without
// cross-worker coordination.
func MRN(patientID int) string {
	return fmt.Sprintf("MRN%06d", 100000+patientID)
}

// NPI returns the national provider identifier for a provider ID, unique
// by the same construction as MRN.
func NPI(providerID int) string {
	return fmt.Sprintf("%d", 1000000000+providerID)
}

// Patients generates count patients with IDs [startID, startID+count).
func Patients(rng *rand.Rand, startID, count int, now time.Time) []model.Patient {
	patients := make([]model.Patient, 0, count)
	for i := 0; i < count; i++ {
		id := startID + i

		sex := choice(rng, []string{"M", "F"})
		var first string
		if sex == "M" {
			first = choice(rng, catalog.FirstNamesMale)
		} else {
			first = choice(rng, catalog.FirstNamesFemale)
		}

		middle := ""
		if rng.Float64() > 0.3 {
			middle = firstNameAny(rng)
		}

		ageDays := 18*365 + rng.Intn((95-18)*365)
		dob := now.AddDate(0, 0, -ageDays)

		last := choice(rng, catalog.LastNames)
		phoneSecondary := ""
		if rng.Float64() > 0.5 {
			phoneSecondary = phone(rng)
		}

		patients = append(patients, model.Patient{
			PatientID:            id,
			MRN:                  MRN(id),
			FirstName:            first,
			LastName:             last,
			MiddleName:           middle,
			DateOfBirth:          dob,
			Sex:                  sex,
			Race:                 choice(rng, catalog.Races),
			Ethnicity:            choice(rng, catalog.Ethnicities),
			PrimaryLanguage:      choice(rng, catalog.Languages),
			SSNLast4:             fmt.Sprintf("%d", 1000+rng.Intn(9000)),
			StreetAddress:        streetAddress(rng),
			City:                 choice(rng, catalog.Cities),
			State:                choice(rng, catalog.StateAbbrs),
			ZipCode:              fmt.Sprintf("%05d", rng.Intn(100000)),
			PhonePrimary:         phone(rng),
			PhoneSecondary:       phoneSecondary,
			Email:                email(rng, first, last, id),
			EmergencyContactName: firstNameAny(rng) + " " + choice(rng, catalog.LastNames),
			EmergencyContactRel:  choice(rng, catalog.ContactRelationships),
			EmergencyContactTel:  phone(rng),
			InsuranceProvider:    choice(rng, catalog.Insurers),
			InsurancePolicy:      "POL" + digits(rng, 9),
			CreatedAt:            timeBetween(rng, now.AddDate(-2, 0, 0), now),
			IsActive:             true,
		})
	}
	return patients
}

func email(rng *rand.Rand, first, last string, id int) string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(first), strings.ToLower(last), id,
		choice(rng, catalog.EmailDomains))
}

// Providers generates count providers with IDs [startID, startID+count).
func Providers(rng *rand.Rand, startID, count int, now time.Time) []model.Provider {
	providers := make([]model.Provider, 0, count)
	for i := 0; i < count; i++ {
		id := startID + i

		first := firstNameAny(rng)
		last := choice(rng, catalog.LastNames)
		middle := ""
		if rng.Float64() > 0.5 {
			middle = firstNameAny(rng)
		}

		providers = append(providers, model.Provider{
			ProviderID: id,
			NPI:        NPI(id),
			FirstName:  first,
			LastName:   last,
			MiddleName: middle,
			Title:      choice(rng, catalog.ProviderTitles),
			Specialty:  choice(rng, catalog.Specialties),
			Department: choice(rng, catalog.Departments),
			Phone:      phone(rng),
			Email:      email(rng, first, last, id),
			Pager:      digits(rng, 4),
			HireDate:   timeBetween(rng, now.AddDate(-10, 0, 0), now.AddDate(0, -6, 0)),
			IsActive:   true,
		})
	}
	return providers
}

// Units generates the fixed unit roster.
func Units(rng *rand.Rand) []model.Unit {
	units := make([]model.Unit, 0, len(catalog.Units))
	for i, ut := range catalog.Units {
		units = append(units, model.Unit{
			UnitID:    i + 1,
			UnitCode:  ut.Code,
			UnitName:  ut.Name,
			UnitType:  ut.Code,
			Floor:     choice(rng, catalog.Floors),
			Building:  choice(rng, catalog.Buildings),
			Phone:     "555-" + digits(rng, 4),
			TotalBeds: ut.Beds,
			IsActive:  true,
		})
	}
	return units
}

// Medications generates a formulary of count entries: the canonical list
// first, then synthesized entries. IsHighAlert derives from name membership
// in the fixed hazard set.
func Medications(rng *rand.Rand, count int) []model.Medication {
	meds := make([]model.Medication, 0, count)
	for i, entry := range catalog.Formulary {
		if i >= count {
			break
		}
		meds = append(meds, model.Medication{
			MedicationID: i + 1,
			Name:         entry.Name,
			Generic:      entry.Generic,
			Brand:        entry.Brand,
			Class:        entry.Class,
			Schedule:     entry.Schedule,
			DefaultRoute: entry.Route,
			DefaultForm:  entry.Form,
			IsHighAlert:  catalog.HighAlert[entry.Name],
			IsActive:     true,
		})
	}
	for i := len(meds); i < count; i++ {
		name := choice(rng, catalog.MedStems) + choice(rng, catalog.MedSuffixes)
		generic := choice(rng, catalog.MedStems) + choice(rng, catalog.MedSuffixes)
		brand := choice(rng, catalog.MedStems) + choice(rng, catalog.BrandSuffixes)
		meds = append(meds, model.Medication{
			MedicationID: i + 1,
			Name:         name,
			Generic:      generic,
			Brand:        brand,
			Class:        choice(rng, catalog.MedClasses),
			DefaultRoute: choice(rng, catalog.MedRoutes),
			DefaultForm:  choice(rng, catalog.MedForms),
			IsHighAlert:  false,
			IsActive:     true,
		})
	}
	return meds
}

// Allergies generates allergies for patients [patientStart,
// patientStart+patientCount). Roughly 30% of patients carry 1-3 allergies
// sampled without replacement from the allergen catalog. IDs start at
// startID.
func Allergies(rng *rand.Rand, patientStart, patientCount, providerCount, startID int, now time.Time) []model.Allergy {
	var allergies []model.Allergy
	id := startID
	for p := 0; p < patientCount; p++ {
		patientID := patientStart + p
		if rng.Float64() >= 0.3 {
			continue
		}
		n := 1 + rng.Intn(3)
		for _, allergen := range sample(rng, catalog.Allergens, n) {
			allergies = append(allergies, model.Allergy{
				AllergyID:    id,
				PatientID:    patientID,
				Allergen:     allergen.Allergen,
				AllergyType:  allergen.Type,
				Reaction:     allergen.Reaction,
				Severity:     allergen.Severity,
				OnsetDate:    timeBetween(rng, now.AddDate(-10, 0, 0), now.AddDate(-1, 0, 0)),
				ReportedDate: timeBetween(rng, now.AddDate(-1, 0, 0), now),
				ReportedByID: 1 + rng.Intn(providerCount),
				IsActive:     true,
			})
			id++
		}
	}
	return allergies
}
