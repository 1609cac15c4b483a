package glue

// Kind classifies a step parameter for the gherkin builder.
type Kind int

const (
	// Number covers long, int and Integer parameters.
	Number Kind = iota
	// Text covers String, char, double, boolean and DataTable parameters.
	Text
	// Date covers Date parameters.
	Date
	// Enum marks a user-defined type whose values need separate resolution.
	Enum
)

var kindNames = [...]string{"number", "text", "date", "enum"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Parameter is one typed parameter of a step-definition method.
// EnumType is set only when Kind is Enum and names the declared type.
type Parameter struct {
	Name     string
	Kind     Kind
	EnumType string
}

// Step is the descriptor emitted for one annotated glue-code method:
// the display phrase extracted from its match pattern plus its
// parameters in declaration order.
type Step struct {
	Phrase string
	Params []Parameter
}
