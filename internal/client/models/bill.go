package models

import (
	"strconv"
	"strings"
	"time"
)

// Bill payment statuses as reported by the backend.
const (
	BillStatusPaid           = "Paid"
	BillStatusAutomaticDebit = "AutomaticDebit"
	BillStatusPending        = "Pending"
)

// Bill is one billing-period record for a site. Identity key is BillIdentifier.
type Bill struct {
	BillIdentifier string      `json:"billIdentifier"`
	Status         string      `json:"status"`
	Value          float64     `json:"value"`
	ReferenceMonth string      `json:"referenceMonth"`
	Site           BillSiteRef `json:"site"`
	DueDate        string      `json:"dueDate"`
	Consumption    float64     `json:"consumption"`
}

// BillSiteRef is the site slice embedded in a bill. SiteNumber is not present
// in every backend response.
type BillSiteRef struct {
	ID         string `json:"id"`
	Contract   string `json:"contract"`
	SiteNumber string `json:"siteNumber,omitempty"`
}

// StatusLabel returns the customer-facing label for the payment status.
// Unknown statuses pass through unchanged.
func (b Bill) StatusLabel() string {
	switch b.Status {
	case BillStatusPaid:
		return "Paga"
	case BillStatusAutomaticDebit:
		return "Débito Automático"
	case BillStatusPending:
		return "Pendente"
	default:
		return b.Status
	}
}

// DueDateFormatted renders the ISO due date as dd/mm/yyyy. The raw string is
// returned unchanged when it parses as neither a plain date nor RFC 3339.
func (b Bill) DueDateFormatted() string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if ts, err := time.Parse(layout, b.DueDate); err == nil {
			return ts.Format("02/01/2006")
		}
	}
	return b.DueDate
}

// ValueFormatted renders the amount with two decimals and a comma separator,
// e.g. 142.5 -> "142,50".
func (b Bill) ValueFormatted() string {
	return strings.Replace(strconv.FormatFloat(b.Value, 'f', 2, 64), ".", ",", 1)
}
