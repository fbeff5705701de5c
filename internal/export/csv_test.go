package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"go-garderie/internal/form"

	"github.com/stretchr/testify/assert"
)

func TestBuildCSV(t *testing.T) {
	forms := []form.Form{
		{
			ID:           "form_2",
			ChildName:    "Léa",
			ParentName:   "Marie Tremblay",
			ProviderName: "Mme Gagnon",
			Office:       "Bureau Nord",
			EndDate:      "2024-01-28",
			Status:       form.StatusSigned,
			CreatedAt:    "2024-01-31T15:04:05Z",
			Signed:       true,
		},
		{
			ID:        "form_1",
			ChildName: "Noah",
			Status:    form.StatusDraft,
			CreatedAt: "2024-01-01T10:00:00Z",
		},
	}

	b, err := BuildCSV(forms)
	assert.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(b))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, []string{
		"ID", "Enfant", "Parent", "RSGE", "Bureau",
		"Date Fin", "Statut", "Date Création", "Signé",
	}, rows[0])

	assert.Equal(t, "form_2", rows[1][0])
	assert.Equal(t, "Léa", rows[1][1])
	assert.Equal(t, "Oui", rows[1][8])

	assert.Equal(t, "form_1", rows[2][0])
	assert.Equal(t, "Non", rows[2][8])
}

func TestBuildCSV_Empty(t *testing.T) {
	b, err := BuildCSV(nil)
	assert.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(b))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "fiches_assiduite_20240131.csv", Filename(now))
}
