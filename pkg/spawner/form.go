// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import (
	"html/template"
	"sort"
	"strings"

	"github.com/isambard-sc/brics-auth-service/internal/types"
)

// optionsFormTemplate renders the session-launch form. The control
// named brics_project returns a single project identifier from the
// user's authorization state.
var optionsFormTemplate = template.Must(template.New("options_form").Parse(`<div class="form-group">
  <label for="brics_project">Project</label>
  <select name="brics_project" class="form-control" required>
{{- range .Projects}}
    <option value="{{.ID}}">{{.ID}} ({{.Name}})</option>
{{- end}}
  </select>
  <label for="runtime">Runtime (HH:MM:SS)</label>
  <input name="runtime" class="form-control" value="01:00:00" required>
  <label for="ngpus">GPUs</label>
  <select name="ngpus" class="form-control" required>
{{- range .GpuChoices}}
    <option value="{{.}}">{{.}}</option>
{{- end}}
  </select>
  <label for="partition">Partition (optional)</label>
  <input name="partition" class="form-control" value="">
  <label for="reservation">Reservation (optional)</label>
  <input name="reservation" class="form-control" value="">
</div>
`))

type formProject struct {
	ID   string
	Name string
}

// MakeOptionsForm generates the HTML options form for the given
// authorization state. Projects are listed in lexicographic order so
// the form is stable across logins.
func MakeOptionsForm(state types.AuthorizationState) (string, error) {
	projects := make([]formProject, 0, len(state))
	for id, grant := range state {
		projects = append(projects, formProject{ID: id, Name: grant.Name})
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })

	data := struct {
		Projects   []formProject
		GpuChoices []string
	}{
		Projects:   projects,
		GpuChoices: []string{"0", "1", "2", "3", "4"},
	}

	builder := new(strings.Builder)
	if err := optionsFormTemplate.Execute(builder, data); err != nil {
		return "", err
	}

	return builder.String(), nil
}
