package gen

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dariyanisacc/healthcare-sql-project/internal/catalog"
)

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func TestMRNDerivedFromID(t *testing.T) {
	require.Equal(t, "MRN100001", MRN(1))
	require.Equal(t, "MRN100500", MRN(500))

	// Disjoint ID ranges can never produce the same MRN, so parallel
	// workers need no coordination.
	seen := make(map[string]bool)
	for id := 1; id <= 10000; id++ {
		m := MRN(id)
		require.False(t, seen[m])
		seen[m] = true
	}
}

func TestNPIFormat(t *testing.T) {
	require.Equal(t, "1000000001", NPI(1))
	require.Regexp(t, regexp.MustCompile(`^1\d{9}$`), NPI(999))
}

func TestPatientsDeterministicAndWellFormed(t *testing.T) {
	a := Patients(rand.New(rand.NewSource(7)), 1, 50, testNow)
	b := Patients(rand.New(rand.NewSource(7)), 1, 50, testNow)
	require.Equal(t, a, b)

	for _, p := range a {
		require.Equal(t, MRN(p.PatientID), p.MRN)
		require.Contains(t, []string{"M", "F"}, p.Sex)
		require.NotEmpty(t, p.FirstName)
		require.NotEmpty(t, p.Email)
		require.True(t, p.IsActive)

		age := testNow.Sub(p.DateOfBirth).Hours() / 24 / 365
		require.GreaterOrEqual(t, age, 17.9)
		require.Less(t, age, 95.1)
	}
}

func TestPatientsHonorStartID(t *testing.T) {
	patients := Patients(rand.New(rand.NewSource(7)), 501, 10, testNow)
	for i, p := range patients {
		require.Equal(t, 501+i, p.PatientID)
	}
}

func TestProvidersWellFormed(t *testing.T) {
	providers := Providers(rand.New(rand.NewSource(3)), 1, 50, testNow)
	require.Len(t, providers, 50)
	for i, p := range providers {
		require.Equal(t, i+1, p.ProviderID)
		require.Equal(t, NPI(p.ProviderID), p.NPI)
		require.Contains(t, catalog.ProviderTitles, p.Title)
		require.True(t, p.HireDate.Before(testNow))
	}
}

func TestUnitsMatchRoster(t *testing.T) {
	units := Units(rand.New(rand.NewSource(1)))
	require.Len(t, units, len(catalog.Units))
	for i, u := range units {
		require.Equal(t, i+1, u.UnitID)
		require.Equal(t, catalog.Units[i].Code, u.UnitCode)
		require.Equal(t, catalog.Units[i].Beds, u.TotalBeds)
	}
}

func TestMedicationsCanonicalThenSynthesized(t *testing.T) {
	meds := Medications(rand.New(rand.NewSource(9)), 200)
	require.Len(t, meds, 200)

	for i, entry := range catalog.Formulary {
		require.Equal(t, entry.Name, meds[i].Name)
		require.Equal(t, catalog.HighAlert[entry.Name], meds[i].IsHighAlert)
	}
	for _, m := range meds[len(catalog.Formulary):] {
		require.False(t, m.IsHighAlert)
		require.NotEmpty(t, m.Name)
	}

	// A formulary smaller than the canonical list truncates it.
	small := Medications(rand.New(rand.NewSource(9)), 5)
	require.Len(t, small, 5)
	require.Equal(t, catalog.Formulary[4].Name, small[4].Name)
}

func TestAllergiesRateAndSampling(t *testing.T) {
	allergies := Allergies(rand.New(rand.NewSource(11)), 1, 1000, 50, 1, testNow)

	withAllergy := make(map[int][]string)
	prevID := 0
	for _, a := range allergies {
		require.Greater(t, a.AllergyID, prevID)
		prevID = a.AllergyID
		withAllergy[a.PatientID] = append(withAllergy[a.PatientID], a.Allergen)
	}

	// Roughly 30% of patients carry allergies.
	require.Greater(t, len(withAllergy), 200)
	require.Less(t, len(withAllergy), 400)

	for pid, allergens := range withAllergy {
		require.LessOrEqual(t, len(allergens), 3, "patient %d", pid)
		seen := make(map[string]bool)
		for _, al := range allergens {
			require.False(t, seen[al], "patient %d sampled %s twice", pid, al)
			seen[al] = true
		}
	}
}
