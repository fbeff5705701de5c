package export

import (
	"bytes"
	"encoding/csv"
	"time"

	"go-garderie/internal/form"
)

// csvHeader mirrors the columns the admin export has always shipped with.
var csvHeader = []string{
	"ID", "Enfant", "Parent", "RSGE", "Bureau",
	"Date Fin", "Statut", "Date Création", "Signé",
}

// BuildCSV flattens every fiche into one scalar row; structured fields stay
// out of the tabular export.
func BuildCSV(forms []form.Form) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, f := range forms {
		signed := "Non"
		if f.Signed {
			signed = "Oui"
		}
		row := []string{
			f.ID,
			f.ChildName,
			f.ParentName,
			f.ProviderName,
			f.Office,
			f.EndDate,
			f.Status,
			f.CreatedAt,
			signed,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename names the download after the export date.
func Filename(now time.Time) string {
	return "fiches_assiduite_" + now.Format("20060102") + ".csv"
}
