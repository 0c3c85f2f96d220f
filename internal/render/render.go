package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/mr1hm/go-flood-safety/internal/models"
)

// alertsTemplate renders the alert list as a fragment of cards, newest first.
// User-supplied fields pass through html/template's contextual escaping; the
// severity class comes from the closed severity set, never from user input.
const alertsTemplate = `{{ if .Alerts }}{{ range .Alerts }}<div class="alert-item {{ .Severity }}">
  <strong>{{ .Title }}</strong>
  <div class="meta">{{ if .Location }}{{ .Location }} &bull; {{ end }}{{ .When }}</div>
  <p>{{ .Description }}</p>
</div>
{{ end }}{{ else }}<p>No alerts reported.</p>
{{ end }}`

type alertView struct {
	Title       string
	Description string
	Location    string
	Severity    models.AlertSeverity
	When        string
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("alerts").Parse(alertsTemplate)),
	}
}

// RenderAlerts writes the alert list markup, most recent record first. An
// empty collection yields the placeholder block, never empty output.
func (r *Renderer) RenderAlerts(w io.Writer, alerts []models.Alert) error {
	views := make([]alertView, 0, len(alerts))
	for i := len(alerts) - 1; i >= 0; i-- {
		a := alerts[i]
		views = append(views, alertView{
			Title:       a.Title,
			Description: a.Description,
			Location:    a.Location,
			Severity:    a.Severity,
			When:        a.CreatedAt.Format("Jan 2, 2006 15:04"),
		})
	}

	if err := r.tmpl.Execute(w, struct{ Alerts []alertView }{views}); err != nil {
		return fmt.Errorf("error rendering alerts: %w", err)
	}
	return nil
}
