// Package render serializes step descriptors into the JavaScript snippet
// consumed by the gherkin-builder page.
package render

import (
	"strings"

	"github.com/gherkin-tools/gluescan/internal/glue"
)

// Step renders one descriptor as a testSteps.push call. Number, text and
// date parameters render as quoted kind tokens; enum parameters render the
// bare type name, which the page resolves against its enum definitions.
func Step(s glue.Step) string {
	var b strings.Builder
	b.WriteString(`testSteps.push( new step( "`)
	b.WriteString(s.Phrase)
	b.WriteString(`"`)
	for _, param := range s.Params {
		b.WriteString(`, new keypair( "`)
		b.WriteString(param.Name)
		b.WriteString(`", `)
		if param.Kind == glue.Enum {
			b.WriteString(param.EnumType)
		} else {
			b.WriteString(`"` + param.Kind.String() + `"`)
		}
		b.WriteString(` )`)
	}
	b.WriteString(` ) );`)
	return b.String()
}

// Steps renders every descriptor, one per line.
func Steps(steps []glue.Step) string {
	var b strings.Builder
	for _, s := range steps {
		b.WriteString(Step(s))
		b.WriteString("\n")
	}
	return b.String()
}
