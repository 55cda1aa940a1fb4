package reporting

import (
	"strings"
	"testing"
)

func TestPredefinedMeasures(t *testing.T) {
	if len(PredefinedMeasures) != 5 {
		t.Fatalf("expected 5 predefined measures, got %d", len(PredefinedMeasures))
	}

	expectedIDs := []string{
		"patient-count",
		"revenue-by-day",
		"expenses-by-category",
		"top-medications",
		"transaction-status-breakdown",
	}

	for i, expectedID := range expectedIDs {
		if PredefinedMeasures[i].ID != expectedID {
			t.Errorf("expected measure[%d].ID = %s, got %s", i, expectedID, PredefinedMeasures[i].ID)
		}
	}
}

func TestPredefinedMeasures_HaveSQL(t *testing.T) {
	for _, m := range PredefinedMeasures {
		if m.SQL == "" {
			t.Errorf("measure %s has empty SQL", m.ID)
		}
		if m.Name == "" {
			t.Errorf("measure %s has empty name", m.ID)
		}
		if m.Description == "" {
			t.Errorf("measure %s has empty description", m.ID)
		}
	}
}

func TestFindMeasure_Exists(t *testing.T) {
	m := FindMeasure("patient-count")
	if m == nil {
		t.Fatal("expected to find patient-count measure")
	}
	if m.Name != "Patient Count" {
		t.Errorf("expected 'Patient Count', got %s", m.Name)
	}
}

func TestFindMeasure_NotFound(t *testing.T) {
	if m := FindMeasure("nonexistent"); m != nil {
		t.Error("expected nil for nonexistent measure")
	}
}

func TestFindMeasure_AllPredefined(t *testing.T) {
	for _, def := range PredefinedMeasures {
		found := FindMeasure(def.ID)
		if found == nil {
			t.Errorf("expected to find measure %s", def.ID)
			continue
		}
		if found.ID != def.ID {
			t.Errorf("ID mismatch: expected %s, got %s", def.ID, found.ID)
		}
	}
}

func TestRevenueByDayMeasure_CompletedOnly(t *testing.T) {
	m := FindMeasure("revenue-by-day")
	if m == nil {
		t.Fatal("expected revenue-by-day measure")
	}
	if !strings.Contains(m.SQL, "status = 'completed'") {
		t.Error("revenue measure must count completed transactions only")
	}
}

func TestTopMedicationsMeasure_FallsBackToItemName(t *testing.T) {
	m := FindMeasure("top-medications")
	if m == nil {
		t.Fatal("expected top-medications measure")
	}
	if !strings.Contains(m.SQL, "LEFT JOIN medication") {
		t.Error("expected a left join so uncataloged items still rank")
	}
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(nil)
	if h == nil {
		t.Fatal("expected non-nil handler")
	}
}
