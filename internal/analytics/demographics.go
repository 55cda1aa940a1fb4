package analytics

import (
	"math"
	"time"

	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
)

// GenderCounts is the recognized-gender breakdown. Values outside the three
// enums are dropped from every bucket.
type GenderCounts struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Other  int `json:"other"`
}

// Demographics summarizes the patient roster relative to a reference time.
type Demographics struct {
	TotalPatients        int          `json:"total_patients"`
	NewPatientsThisMonth int          `json:"new_patients_this_month"`
	AverageAge           int          `json:"average_age"`
	GenderDistribution   GenderCounts `json:"gender_distribution"`
}

// PatientDemographics computes roster totals, this-month registrations, the
// mean age rounded to the nearest integer (0 for an empty roster) and the
// gender distribution.
func PatientDemographics(patients []*patient.Patient, now time.Time) Demographics {
	d := Demographics{TotalPatients: len(patients)}

	ageSum := 0
	for _, p := range patients {
		ageSum += p.Age
		if sameMonth(p.CreatedAt, now) {
			d.NewPatientsThisMonth++
		}
		switch p.Gender {
		case patient.GenderMale:
			d.GenderDistribution.Male++
		case patient.GenderFemale:
			d.GenderDistribution.Female++
		case patient.GenderOther:
			d.GenderDistribution.Other++
		}
	}
	if len(patients) > 0 {
		d.AverageAge = int(math.Round(float64(ageSum) / float64(len(patients))))
	}
	return d
}
