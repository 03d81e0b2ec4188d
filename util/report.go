// Copyright 2026 The heredctl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"fmt"
	"heredctl/inference"
	"strconv"
	"strings"
	"text/template"
	"time"
)

type reportRow struct {
	Label string
	P     float64
}

type personReport struct {
	Name  string
	Gene  []reportRow
	Trait []reportRow
}

var reportTemplate = template.Must(template.New("report").
	Funcs(template.FuncMap{
		"prob": func(p float64) string { return strconv.FormatFloat(p, 'f', 4, 64) },
	}).
	Parse(`{{ range . -}}
{{ .Name }}:
  Gene:
{{- range .Gene }}
    {{ .Label }}: {{ prob .P }}
{{- end }}
  Trait:
{{- range .Trait }}
    {{ .Label }}: {{ prob .P }}
{{- end }}
{{ end -}}`))

// FmtMarginals renders the normalized distributions as one block per
// person in the order given by names, every probability with 4 decimal
// places. Gene counts are listed from two copies down to none, the trait
// rows list True before False.
func FmtMarginals(names []string, distributions inference.Distributions) string {
	reports := make([]personReport, 0, len(names))
	for _, name := range names {
		marginals := distributions[name]
		reports = append(reports, personReport{
			Name: name,
			Gene: []reportRow{
				{Label: "2", P: marginals.Gene[2]},
				{Label: "1", P: marginals.Gene[1]},
				{Label: "0", P: marginals.Gene[0]},
			},
			Trait: []reportRow{
				{Label: "True", P: marginals.Trait[true]},
				{Label: "False", P: marginals.Trait[false]},
			},
		})
	}

	builder := strings.Builder{}
	if err := reportTemplate.Execute(&builder, reports); err != nil {
		return err.Error()
	}
	return builder.String()
}

// FmtDurationHumanReadable takes a duration and returns it in a human readable form.
// This is basically equivalent to time.Duration.Round(time.Second) with the following differences:
//   - durations under a minute get printed with millisecond precision
//   - durations equal or above a minute get printed with second precision
func FmtDurationHumanReadable(d time.Duration) string {
	if d.Milliseconds() < 60000 {
		return fmt.Sprintf("%s", d.Round(time.Millisecond))
	} else {
		return fmt.Sprintf("%s", d.Round(time.Second))
	}
}
