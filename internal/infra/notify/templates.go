package notify

import (
	"bytes"
	"text/template"

	"court-booking/internal/usecase/shared"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`Hola {{.CustomerName}},

Tu reserva {{.Code}} está confirmada.

Cancha: {{.CourtName}}
Fecha: {{.Date}}
Horario: {{.StartTime}} - {{.EndTime}}
Total: ${{.TotalPrice}}
Pagado en línea: ${{.PaidOnline}}
{{- if gt .PendingAtVenue 0}}
Pendiente en el recinto: ${{.PendingAtVenue}}
{{- end}}

Presenta este código al llegar.
`))

var cancellationTmpl = template.Must(template.New("cancellation").Parse(
	`Hola {{.CustomerName}},

Tu reserva {{.Code}} del {{.Date}} ({{.StartTime}} - {{.EndTime}}) fue cancelada y el pago reembolsado.
`))

func render(t *template.Template, notice shared.ReservationNotice) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, notice); err != nil {
		return "", err
	}
	return buf.String(), nil
}
