package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gherkin-tools/gluescan/internal/glue"
)

func TestStep_NoParams(t *testing.T) {
	out := Step(glue.Step{Phrase: "I have a new registered user"})
	assert.Equal(t, `testSteps.push( new step( "I have a new registered user" ) );`, out)
}

func TestStep_QuotedKinds(t *testing.T) {
	out := Step(glue.Step{
		Phrase: "I click XXXX",
		Params: []glue.Parameter{
			{Name: "target", Kind: glue.Text},
			{Name: "retries", Kind: glue.Number},
			{Name: "when", Kind: glue.Date},
		},
	})
	assert.Equal(t, `testSteps.push( new step( "I click XXXX", new keypair( "target", "text" ), new keypair( "retries", "number" ), new keypair( "when", "date" ) ) );`, out)
}

func TestStep_EnumRendersBareTypeName(t *testing.T) {
	out := Step(glue.Step{
		Phrase: "I pay by XXXX",
		Params: []glue.Parameter{{Name: "method", Kind: glue.Enum, EnumType: "PaymentMethod"}},
	})
	assert.Equal(t, `testSteps.push( new step( "I pay by XXXX", new keypair( "method", PaymentMethod ) ) );`, out)
}

func TestSteps_OneLinePerStep(t *testing.T) {
	out := Steps([]glue.Step{
		{Phrase: "first"},
		{Phrase: "second"},
	})
	assert.Equal(t, "testSteps.push( new step( \"first\" ) );\ntestSteps.push( new step( \"second\" ) );\n", out)
}
