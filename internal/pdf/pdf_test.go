package pdf

import (
	"bytes"
	"testing"

	"github.com/limovia/fleetcrm/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderDocument(t *testing.T) {
	doc := &models.Document{
		Kind:       models.KindInvoice,
		Number:     "FAC-2026-0012",
		IssueDate:  "2026-02-10",
		ClientName: "Hotel Le Grand",
		ClientAddr: "8 avenue Montaigne, 75008 Paris",
		Items: []models.LineItem{
			{Description: "Transfert aéroport", Quantity: 2, UnitPrice: 120, VATRate: 10},
			{Description: "Mise à disposition", Quantity: 3, UnitPrice: 80, VATRate: 20},
		},
		Status: models.DocumentSent,
	}
	company := &models.Company{
		Name:      "Limovia SARL",
		Address:   "12 rue de la Paix, 75002 Paris",
		VATNumber: "FR12345678901",
	}

	var buf bytes.Buffer
	err := RenderDocument(&buf, doc, company, "fr")

	assert.NoError(t, err)
	assert.True(t, buf.Len() > 0)
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestRenderDocument_NoCompany(t *testing.T) {
	doc := &models.Document{
		Kind:       models.KindQuote,
		Number:     "DEV-2026-0003",
		IssueDate:  "2026-02-10",
		ClientName: "Hotel Le Grand",
		Items: []models.LineItem{
			{Description: "Airport transfer", Quantity: 1, UnitPrice: 120, VATRate: 10},
		},
	}

	var buf bytes.Buffer
	err := RenderDocument(&buf, doc, nil, "en")

	assert.NoError(t, err)
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestRenderSchedule(t *testing.T) {
	trips := []models.Trip{
		{
			Title:       "Airport run",
			ClientName:  "Hotel Le Grand",
			DriverName:  "Jean Moreau",
			Pickup:      "Hôtel Le Grand",
			Destination: "Aéroport CDG",
			Date:        "2024-03-05",
			TimeRange:   "09:00-10:30",
			Passengers:  2,
			Price:       120,
			Status:      models.TripAssigned,
		},
	}

	var buf bytes.Buffer
	err := RenderSchedule(&buf, "2024-03-05", "Jean Moreau", trips, "fr")

	assert.NoError(t, err)
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestRenderSchedule_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSchedule(&buf, "2024-03-05", "all", nil, "en")

	assert.NoError(t, err)
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestScheduleFilename(t *testing.T) {
	assert.Equal(t, "schedule_2024-03-05.pdf", ScheduleFilename("2024-03-05"))
}
