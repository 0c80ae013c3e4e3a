package confirm_booking

import (
	"fmt"
	"strings"

	"github.com/agendei-app/agendei-service/internal/domain"
)

// buildConfirmationMessage formats the WhatsApp text sent to the salon:
// date and hour, customer contact, one bullet per service line with its
// quantity and line total, and the cart total.
func buildConfirmationMessage(
	salonName string,
	dateISO string,
	hour int,
	customerName, customerPhone, customerEmail string,
	items []domain.CartLine,
	total float64,
) string {
	date, _ := parseISO(dateISO)

	lines := []string{
		fmt.Sprintf("Olá! Quero confirmar meu agendamento no %s.", salonName),
		fmt.Sprintf("• Data: %s", date),
		fmt.Sprintf("• Horário: %02d:00", hour),
		"",
		fmt.Sprintf("• Nome: %s", customerName),
		fmt.Sprintf("• Telefone: %s", customerPhone),
		fmt.Sprintf("• E-mail: %s", customerEmail),
		"",
		"• Serviços:",
	}

	for _, item := range items {
		qty := ""
		if item.Qty > 1 {
			qty = fmt.Sprintf(" (x%d)", item.Qty)
		}
		lines = append(lines, fmt.Sprintf("• %s%s - R$ %.2f", item.Name, qty, item.LineTotal()))
	}
	lines = append(lines, fmt.Sprintf("• Total: R$ %.2f", total))

	return strings.Join(lines, "\n")
}

// parseISO reformats YYYY-MM-DD as DD/MM/YYYY; on malformed input the ISO
// string is used as-is.
func parseISO(dateISO string) (string, bool) {
	parts := strings.Split(dateISO, "-")
	if len(parts) != 3 {
		return dateISO, false
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0], true
}
