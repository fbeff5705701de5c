package document

import (
	"strings"
	"testing"

	"go-garderie/internal/form"

	"github.com/stretchr/testify/assert"
)

func sampleForm() form.Form {
	twenty := form.MoneyFromFloat(20)
	zero := form.MoneyFromFloat(0)
	return form.Form{
		ID:           "form_1700000000",
		Office:       "Bureau Nord",
		ChildName:    "Léa",
		ParentName:   "Marie Tremblay",
		ProviderName: "Mme Gagnon",
		EndDate:      "2024-01-28",
		Attendance: form.WeekEntries{
			{StartDate: "2024-01-01", Days: []form.Code{"P", "P", "A", "P", "P", "", ""}},
		},
		Payments: form.PaymentEntries{
			{Date: "2024-01-05", Amount: &twenty, Balance: &zero},
		},
		Status:   form.StatusSigned,
		Signed:   true,
		SignedAt: "2024-01-31T15:04:05Z",
	}
}

func TestRender_FixedShape(t *testing.T) {
	d := Render(sampleForm())

	assert.Len(t, d.Attendance, form.WeeksPerForm)
	for _, row := range d.Attendance {
		assert.Len(t, row, 1+form.DaysPerWeek)
	}
	assert.Len(t, d.Payments, form.PaymentsPerForm)
	assert.Len(t, d.Legend, 8)
	assert.Equal(t, []string{"Semaine du", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}, d.AttendanceHeader)
}

func TestRender_AttendanceRow(t *testing.T) {
	d := Render(sampleForm())

	line := strings.Join(d.Attendance[0], " | ")
	assert.Equal(t, "2024-01-01 | P | P | A | P | P |  | ", line)
}

func TestRender_MoneyCells(t *testing.T) {
	d := Render(sampleForm())

	assert.Equal(t, "20.00", d.Payments[0].Amount)
	assert.Equal(t, "0.00", d.Payments[0].Balance, "a recorded zero prints as 0.00")
	assert.Equal(t, "", d.Payments[1].Amount, "an unset amount prints blank")
	assert.Equal(t, "", d.Payments[1].Balance)
}

func TestRender_SignatureLine(t *testing.T) {
	signed := Render(sampleForm())
	assert.Len(t, signed.Signatures, 3)
	assert.Equal(t, "Signé le 2024-01-31", signed.Signatures[2])

	f := sampleForm()
	f.Signed = false
	f.SignedAt = ""
	unsigned := Render(f)
	assert.Len(t, unsigned.Signatures, 2)
}

func TestRender_EmptyFormStillComplete(t *testing.T) {
	d := Render(form.Form{})

	assert.Len(t, d.Attendance, form.WeeksPerForm)
	assert.Len(t, d.Payments, form.PaymentsPerForm)
	assert.NotEmpty(t, d.Title)
	assert.NotEmpty(t, d.Attestation)

	joined := strings.Join(d.Lines(), "\n")
	assert.Contains(t, joined, "Fiche d'Assiduité")
	assert.Contains(t, joined, "Légende des codes :")
	assert.Contains(t, joined, "Assiduité")
	assert.Contains(t, joined, "Confirmation du paiement")
	assert.Contains(t, joined, "Attestation :")
	assert.Contains(t, joined, "Signature du parent")
}

func TestLines_PaymentFormat(t *testing.T) {
	lines := Render(sampleForm()).Lines()

	assert.Contains(t, lines, "1. 2024-01-05 | 20.00 | 0.00")
	assert.Contains(t, lines, "2.  |  | ")
}

func TestPDF_Header(t *testing.T) {
	b, err := PDF(Render(sampleForm()))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "%PDF-1.4"))
	assert.True(t, strings.HasSuffix(string(b), "%%EOF"))
	assert.Contains(t, string(b), "/Count 1")
}

func TestPDF_Paginates(t *testing.T) {
	lines := make([]string, linesPerPage+1)
	pages := paginate(lines, linesPerPage)
	assert.Len(t, pages, 2)
	assert.Len(t, pages[0], linesPerPage)
	assert.Len(t, pages[1], 1)
}

func TestEncodeWinAnsi(t *testing.T) {
	assert.Equal(t, "Pr\xe9sence \xbd jour", encodeWinAnsi("Présence ½ jour"))
	assert.Equal(t, "?", encodeWinAnsi("€"))
}

func TestPDFEscape(t *testing.T) {
	assert.Equal(t, `\(a\) \\ b`, pdfEscape(`(a) \ b`))
}
