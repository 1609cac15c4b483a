package glue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessLine_StepWithParams(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.ProcessLine(`    @When("^I click (.*)$")`))
	require.NoError(t, p.ProcessLine(`    public void clickButton(String target, int retries) {`))

	steps := p.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, "I click XXXX", steps[0].Phrase)
	require.Len(t, steps[0].Params, 2)
	assert.Equal(t, Parameter{Name: "target", Kind: Text}, steps[0].Params[0])
	assert.Equal(t, Parameter{Name: "retries", Kind: Number}, steps[0].Params[1])
}

func TestProcessLine_StepWithoutParams(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.ProcessLine(`@Given("^I have a new registered user$")`))
	require.NoError(t, p.ProcessLine(`public void newRegisteredUser() {`))

	steps := p.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, "I have a new registered user", steps[0].Phrase)
	assert.Empty(t, steps[0].Params)
}

func TestProcessLine_DateParam(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.ProcessLine(`@Given("^my account expires on (.*)$")`))
	require.NoError(t, p.ProcessLine(`public void setExpiry(Date expiry) {`))

	steps := p.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, Parameter{Name: "expiry", Kind: Date}, steps[0].Params[0])
}

func TestProcessLine_EnumParam(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.ProcessLine(`@When("^I pay by (.*)$")`))
	require.NoError(t, p.ProcessLine(`public void payBy(PaymentMethod method) {`))

	steps := p.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, Parameter{Name: "method", Kind: Enum, EnumType: "PaymentMethod"}, steps[0].Params[0])
	assert.Equal(t, []string{"PaymentMethod"}, p.Registry().Enumerations())
}

func TestProcessLine_ListParam(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.ProcessLine(`@Given("^I own some pets$")`))
	require.NoError(t, p.ProcessLine(`public void ownPets(List<Animal> pets) {`))

	steps := p.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, Parameter{Name: "petsList", Kind: Enum, EnumType: "Animal"}, steps[0].Params[0])
	assert.Equal(t, []string{"Animal"}, p.Registry().Enumerations())
}

func TestProcessLine_TransformMarkerStripped(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.ProcessLine(`@When("^I wait (.*) seconds$")`))
	require.NoError(t, p.ProcessLine(`public void wait(@Transform(SecondsConverter.class) long seconds) {`))

	steps := p.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, Parameter{Name: "seconds", Kind: Number}, steps[0].Params[0])
}

func TestProcessLine_DelimiterMarkerStripped(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.ProcessLine(`@Given("^I have items (.*)$")`))
	require.NoError(t, p.ProcessLine(`public void haveItems(@Delimiter(";") List<String> items) {`))

	steps := p.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, Parameter{Name: "itemsList", Kind: Text}, steps[0].Params[0])
}

func TestProcessLine_ImportForwardedToRegistry(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.ProcessLine(`import com.example.steps.Animal;`))

	assert.Equal(t, []string{"com.example.steps.Animal"}, p.Registry().ClassIncludes())
	assert.Empty(t, p.Steps())
}

func TestProcessLine_MalformedAnnotationLeavesStateIdle(t *testing.T) {
	p := NewParser()
	err := p.ProcessLine(`@Given("I have no anchors")`)
	var mpe *MalformedPatternError
	require.ErrorAs(t, err, &mpe)
	assert.Empty(t, p.Steps())

	// The scanner stayed idle, so an ordinary line emits nothing.
	require.NoError(t, p.ProcessLine(`public void noAnchors() {`))
	assert.Empty(t, p.Steps())
}

func TestProcessLine_MalformedMethodKeepsAwaitingParams(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.ProcessLine(`@When("^I log in$")`))

	err := p.ProcessLine(`public void logIn {`)
	var mme *MalformedMethodError
	require.ErrorAs(t, err, &mme)
	assert.Empty(t, p.Steps())

	// The real signature can still complete the step.
	require.NoError(t, p.ProcessLine(`public void logIn() {`))
	require.Len(t, p.Steps(), 1)
	assert.Equal(t, "I log in", p.Steps()[0].Phrase)
}

func TestProcessLine_StepsAccumulateInOrder(t *testing.T) {
	p := NewParser()
	lines := []string{
		`@Given("^I have a new registered user$")`,
		`public void newUser() {`,
		`}`,
		`@When("^I (.*)login$")`,
		`public void login(String how) {`,
		`}`,
		`@Then("^I see the dashboard$")`,
		`public void dashboard() {`,
	}
	for _, line := range lines {
		require.NoError(t, p.ProcessLine(line))
	}

	steps := p.Steps()
	require.Len(t, steps, 3)
	assert.Equal(t, "I have a new registered user", steps[0].Phrase)
	assert.Equal(t, "I XXXXlogin", steps[1].Phrase)
	assert.Equal(t, "I see the dashboard", steps[2].Phrase)
}

func TestAddBaseDirectory_AccumulatesAndRebuildsRegistry(t *testing.T) {
	p := NewParser()
	p.AddBaseDirectory("src/main/java")
	p.Registry().AddEnumeration("Animal")

	p.AddBaseDirectory("src/test/java")

	assert.Equal(t, []string{"src/main/java", "src/test/java"}, p.Registry().BaseDirectories())
	// The rebuilt registry starts over.
	assert.Empty(t, p.Registry().Enumerations())
}
