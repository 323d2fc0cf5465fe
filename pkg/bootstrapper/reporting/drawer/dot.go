package drawer

import (
	"fmt"
	"html"
	"io"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dot(b *graphBuilder, wrt io.Writer) error {
	desc, err := generateDOT(b)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// generateDOT lists vertices, and the edges leaving them, in insertion order
// so the same tree always renders the same file.
func generateDOT(b *graphBuilder) (description, error) {
	desc := description{
		GraphType:    "digraph",
		Attributes:   map[string]string{"rankdir": "LR"},
		EdgeOperator: "->",
		Statements:   make([]statement, 0),
	}

	vertices, err := b.store.ListVertices()
	if err != nil {
		return desc, errors.Wrap(err, "unable to list vertices")
	}

	for _, vertex := range vertices {
		_, sourceProperties, err := b.store.Vertex(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))

		for k, v := range sourceProperties.Attributes {
			if k == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, html.EscapeString(vertex), html.EscapeString(v))

				continue
			}

			sourceAttributes[k] = quoteEscaper.Replace(v)
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           quoteEscaper.Replace(vertex),
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		})

		for _, edge := range b.store.OutEdges(vertex) {
			desc.Statements = append(desc.Statements, statement{
				Source:         quoteEscaper.Replace(vertex),
				Target:         quoteEscaper.Replace(edge.Target),
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}
