package document

import (
	"fmt"
	"strings"

	"go-garderie/internal/form"
)

// Document is the printable fiche. All seven sections are always present;
// missing data renders as blanks, never as omitted rows or lines.
type Document struct {
	Title            []string
	Identity         []Line
	Legend           []Line
	AttendanceHeader []string
	Attendance       [][]string
	Payments         []PaymentLine
	Attestation      string
	Signatures       []string
}

type Line struct {
	Label string
	Value string
}

type PaymentLine struct {
	Seq     int
	Date    string
	Amount  string
	Balance string
}

var titleBlock = []string{
	"Fiche d'Assiduité",
	"Garderie en Milieu Familial - Signature Électronique",
}

var legendBlock = []Line{
	{"P", "Présence 1 jour"},
	{"P½", "Présence ½ jour"},
	{"A", "Absence 1 jour"},
	{"A½", "Absence ½ jour"},
	{"R", "Enfant remplaçant 1 jour"},
	{"R½", "Enfant remplaçant ½ jour"},
	{"F", "1 jour fermeture non subventionné"},
	{"AN", "1 journée non déterminée APSS"},
}

var attendanceHeader = []string{
	"Semaine du", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim",
}

const attestation = "J'atteste que les renseignements inscrits sur cette fiche " +
	"d'assiduité correspondent à la présence réelle de mon enfant et aux " +
	"contributions réduites payées et à payer."

// Render maps a fiche to its printable document. Pure: no clock, no store,
// same input always yields the same document.
func Render(f form.Form) Document {
	d := Document{
		Title: titleBlock,
		Identity: []Line{
			{"Nom du bureau coordonnateur", f.Office},
			{"Nom de l'enfant", f.ChildName},
			{"Nom du parent", f.ParentName},
			{"Nom de la RSGE", f.ProviderName},
			{"Date de fin de fréquentation", f.EndDate},
		},
		Legend:           legendBlock,
		AttendanceHeader: attendanceHeader,
		Attestation:      attestation,
	}

	weeks := form.NormalizeWeeks(f.Attendance)
	d.Attendance = make([][]string, form.WeeksPerForm)
	for i, w := range weeks {
		row := make([]string, 1+form.DaysPerWeek)
		row[0] = w.StartDate
		for j := 0; j < form.DaysPerWeek; j++ {
			row[1+j] = string(w.DayAt(j))
		}
		d.Attendance[i] = row
	}

	payments := form.NormalizePayments(f.Payments)
	d.Payments = make([]PaymentLine, form.PaymentsPerForm)
	for i, p := range payments {
		d.Payments[i] = PaymentLine{
			Seq:     i + 1,
			Date:    p.Date,
			Amount:  moneyCell(p.Amount),
			Balance: moneyCell(p.Balance),
		}
	}

	d.Signatures = []string{
		"Signature de la RSGE : ________________________",
		"Signature du parent : ________________________",
	}
	if f.Signed {
		d.Signatures = append(d.Signatures, "Signé le "+datePart(f.SignedAt))
	}

	return d
}

// moneyCell distinguishes "no payment recorded" (blank) from a recorded zero
// ("0.00").
func moneyCell(m *form.Money) string {
	if m == nil {
		return ""
	}
	return m.String()
}

// datePart truncates an RFC3339 timestamp to its date portion.
func datePart(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}

// Lines flattens the document top to bottom, one printable line each.
func (d Document) Lines() []string {
	var lines []string

	lines = append(lines, d.Title...)
	lines = append(lines, "")

	for _, l := range d.Identity {
		lines = append(lines, l.Label+" : "+l.Value)
	}
	lines = append(lines, "")

	lines = append(lines, "Légende des codes :")
	for _, l := range d.Legend {
		lines = append(lines, l.Label+" : "+l.Value)
	}
	lines = append(lines, "")

	lines = append(lines, "Assiduité")
	lines = append(lines, strings.Join(d.AttendanceHeader, " | "))
	for _, row := range d.Attendance {
		lines = append(lines, strings.Join(row, " | "))
	}
	lines = append(lines, "")

	lines = append(lines, "Confirmation du paiement")
	for _, p := range d.Payments {
		lines = append(lines, fmt.Sprintf("%d. %s | %s | %s", p.Seq, p.Date, p.Amount, p.Balance))
	}
	lines = append(lines, "")

	lines = append(lines, "Attestation : "+d.Attestation)
	lines = append(lines, "")

	lines = append(lines, d.Signatures...)

	return lines
}
