package cli

import (
	"fmt"
	"text/template"
)

const ticketTemplate = `
=== Ticket {{ .ID }} ===

Device:     {{ .DeviceCode }}
{{- if .DeviceLocation }}
Location:   {{ .DeviceLocation }}
{{- end }}
Technician: {{ .TechnicianName }}
Status:     {{ .Status }}
Started:    {{ fmtTime .StartTime }}
Finished:   {{ fmtTimePtr .EndTime }}
Updated:    {{ fmtTimePtr .UpdatedAt }}
{{- if .Notes }}
Notes:      {{ .Notes }}
{{- end }}

Operations ({{ len .Operations }}):
{{- range .Operations }}
  - {{ .Name }}{{ if .Description }}: {{ .Description }}{{ end }}
{{- else }}
  none
{{- end }}

Spare parts ({{ len .SpareParts }}):
{{- range .SpareParts }}
  - {{ .Name }} x{{ .Quantity }}
{{- else }}
  none
{{- end }}
`

const statusTemplate = `
=== FieldSync Status ===

{{- if .Session }}
User:          {{ .Session.Username }} ({{ .Session.Role }})
{{- else }}
User:          not logged in
{{- end }}
Portal:        {{ if .Endpoint }}{{ .Endpoint }}{{ else }}not configured{{ end }}
Live sync:     {{ .State }}
Last sync:     {{ fmtTime .LastSync }}
{{- if gt .Failures 0 }}
Failures:      {{ .Failures }} consecutive
{{- end }}
Users:         {{ .Users }}
Tickets:       {{ .Tickets }} ({{ .Open }} in progress)
`

var templateFuncs = template.FuncMap{
	"fmtTime":    formatTime,
	"fmtTimePtr": formatTimePtr,
}

var (
	ticketTmpl = template.Must(template.New("ticket").Funcs(templateFuncs).Parse(ticketTemplate))
	statusTmpl = template.Must(template.New("status").Funcs(templateFuncs).Parse(statusTemplate))
)

func (c *Cli) render(t *template.Template, v any) error {
	if err := t.Execute(c.io, v); err != nil {
		return fmt.Errorf("failed to render %s: %w", t.Name(), err)
	}
	return nil
}
