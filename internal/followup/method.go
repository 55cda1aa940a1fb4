package followup

// Unit is the granularity of a method's protection duration.
type Unit string

const (
	UnitDays  Unit = "days"
	UnitYears Unit = "years"
)

// Method is one entry of the static follow-up reference table: how long a
// contraceptive or injectable protects, and a note for the counseling room.
type Method struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Duration      int    `json:"duration"`
	Unit          Unit   `json:"unit"`
	Effectiveness string `json:"effectiveness"`
}

// methods is the fixed reference table. Read-only; the UI picks from it, it
// is never edited per patient.
var methods = []Method{
	{ID: "depo-provera", Name: "Depo-Provera", Duration: 90, Unit: UnitDays,
		Effectiveness: "99% effective with on-time reinjection every 3 months"},
	{ID: "sayana-press", Name: "Sayana Press", Duration: 90, Unit: UnitDays,
		Effectiveness: "99% effective; self-injectable every 3 months"},
	{ID: "noristerat", Name: "Noristerat", Duration: 60, Unit: UnitDays,
		Effectiveness: "99% effective with reinjection every 2 months"},
	{ID: "coc-pills", Name: "Combined Oral Pills", Duration: 28, Unit: UnitDays,
		Effectiveness: "91-99% effective; resupply every cycle"},
	{ID: "implanon", Name: "Implanon NXT", Duration: 3, Unit: UnitYears,
		Effectiveness: "Over 99% effective for 3 years"},
	{ID: "jadelle", Name: "Jadelle", Duration: 5, Unit: UnitYears,
		Effectiveness: "Over 99% effective for 5 years"},
	{ID: "copper-iud", Name: "Copper IUD", Duration: 10, Unit: UnitYears,
		Effectiveness: "Over 99% effective for up to 10 years"},
}

// Methods returns a copy of the reference table.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// LookupMethod resolves a method id. ok=false for unknown ids.
func LookupMethod(id string) (Method, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return Method{}, false
}
