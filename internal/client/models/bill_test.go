package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBill_StatusLabel(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{BillStatusPaid, "Paga"},
		{BillStatusAutomaticDebit, "Débito Automático"},
		{BillStatusPending, "Pendente"},
		{"Cancelled", "Cancelled"},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, Bill{Status: tt.status}.StatusLabel())
		})
	}
}

func TestBill_DueDateFormatted(t *testing.T) {
	assert.Equal(t, "15/03/2024", Bill{DueDate: "2024-03-15"}.DueDateFormatted())
	assert.Equal(t, "15/03/2024", Bill{DueDate: "2024-03-15T00:00:00Z"}.DueDateFormatted())
	assert.Equal(t, "garbage", Bill{DueDate: "garbage"}.DueDateFormatted())
}

func TestBill_ValueFormatted(t *testing.T) {
	assert.Equal(t, "142,50", Bill{Value: 142.5}.ValueFormatted())
	assert.Equal(t, "0,00", Bill{}.ValueFormatted())
	assert.Equal(t, "1234,57", Bill{Value: 1234.567}.ValueFormatted())
}

func TestSite_Key(t *testing.T) {
	a := Site{ID: "1", Contract: "C1"}
	b := Site{ID: "1", Contract: "C2"}
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, "1/C1", a.Key())
}

func TestSite_Active(t *testing.T) {
	assert.True(t, Site{Status: SiteStatusActive}.Active())
	assert.False(t, Site{Status: "Inactive"}.Active())
}
