package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/alans123s/billtrackery/internal/client/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	notifyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	paidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	debitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// billStatusStyle mirrors the badge colors of the original product:
// green for paid, blue for automatic debit, amber for pending.
func billStatusStyle(status string) lipgloss.Style {
	switch status {
	case models.BillStatusPaid:
		return paidStyle
	case models.BillStatusAutomaticDebit:
		return debitStyle
	case models.BillStatusPending:
		return pendingStyle
	default:
		return mutedStyle
	}
}

func renderSites(sites []models.Site) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("Instalações (%d)", len(sites))))
	sb.WriteString("\n")

	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tInstalação\tEndereço\tContrato\tStatus")
	for i, s := range sites {
		status := s.Status
		if s.Active() {
			status = paidStyle.Render(status)
		} else {
			status = mutedStyle.Render(status)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, s.SiteNumber, s.Address, s.Contract, status)
	}
	_ = w.Flush()
	return sb.String()
}

func renderBills(bills []models.Bill, site models.Site) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("Histórico de contas da instalação %s (%d)", site.SiteNumber, len(bills))))
	sb.WriteString("\n")

	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Referência\tVencimento\tValor (R$)\tConsumo (kWh)\tStatus\tIdentificador")
	for _, b := range bills {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%s\t%s\n",
			b.ReferenceMonth,
			b.DueDateFormatted(),
			b.ValueFormatted(),
			b.Consumption,
			billStatusStyle(b.Status).Render(b.StatusLabel()),
			mutedStyle.Render(b.BillIdentifier),
		)
	}
	_ = w.Flush()
	return sb.String()
}
