package glue

import (
	"strings"

	"github.com/gherkin-tools/gluescan/internal/enums"
)

// Parser scans step-definition sources one line at a time and collects a
// descriptor for every Given/When/Then annotated method it encounters.
// One instance may be fed lines from multiple files; descriptors accumulate
// in discovery order. A Parser is not safe for concurrent use.
type Parser struct {
	baseDirs []string
	registry *enums.Registry

	// pending holds the partial descriptor between an annotation line and
	// the method signature that follows it; nil means the scanner is idle.
	pending *Step
	steps   []Step
}

func NewParser() *Parser {
	return &Parser{registry: enums.New(nil)}
}

// AddBaseDirectory registers a root directory holding glue-code sources.
// Directories accumulate, but the enum registry is rebuilt from the full
// list on each call, discarding includes and enumerations recorded so far.
// Register all base directories before feeding lines.
func (p *Parser) AddBaseDirectory(dir string) {
	p.baseDirs = append(p.baseDirs, dir)
	p.registry = enums.New(p.baseDirs)
}

// ProcessLine consumes the next source line. Lines must be fed in file
// order: a step annotation promises that the following line carries the
// method signature with its parameters.
//
// A MalformedPatternError surfaces before any state change, so the scanner
// stays idle. A MalformedMethodError leaves the scanner still awaiting a
// parameter line, so the caller may continue with the real signature.
func (p *Parser) ProcessLine(line string) error {
	// Grab any imports that may name enum types used by the steps.
	if strings.HasPrefix(line, "import ") {
		p.registry.AddClassInclude(strings.TrimSuffix(line[len("import "):], ";"))
	}

	// The previous line was an annotation, so this one holds the parameters.
	if p.pending != nil {
		params, err := p.methodParams(line)
		if err != nil {
			return err
		}
		p.pending.Params = params
		p.steps = append(p.steps, *p.pending)
		p.pending = nil
	}

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "@Given") || strings.HasPrefix(trimmed, "@When") || strings.HasPrefix(trimmed, "@Then") {
		phrase, err := ExtractPhrase(trimmed)
		if err != nil {
			return err
		}
		p.pending = &Step{Phrase: phrase}
	}

	return nil
}

// Steps returns every descriptor collected so far, in discovery order.
func (p *Parser) Steps() []Step {
	return p.steps
}

// Registry returns the enum registry so callers can resolve the enum type
// names collected during classification.
func (p *Parser) Registry() *enums.Registry {
	return p.registry
}

// methodParams extracts and classifies the parameter list of a method
// declaration. The list is the text between the first '(' and the last ')',
// split on bare commas; nested generics beyond the single List<T> case are
// not supported.
func (p *Parser) methodParams(method string) ([]Parameter, error) {
	start := strings.Index(method, "(")
	end := strings.LastIndex(method, ")")
	if start < 0 || end < 0 || start > end {
		return nil, &MalformedMethodError{Method: method}
	}

	raw := method[start+1 : end]
	if raw == "" {
		return nil, nil
	}

	var params []Parameter
	for _, segment := range strings.Split(raw, ",") {
		param, err := p.classify(segment)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

// classify turns one "Type name" parameter segment into a Parameter,
// registering unrecognized types with the enum registry. Unknown is a valid
// classification, not an error.
func (p *Parser) classify(segment string) (Parameter, error) {
	segment = strings.TrimSpace(segment)

	// @Transform(...) and @Delimiter(...) markers carry no type information.
	if strings.HasPrefix(segment, "@Transform") || strings.HasPrefix(segment, "@Delimiter") {
		if idx := strings.Index(segment, ") "); idx >= 0 {
			segment = segment[idx+2:]
		}
	}

	fields := strings.Fields(segment)
	if len(fields) != 2 {
		return Parameter{}, &MalformedMethodError{Method: segment}
	}
	typ, name := fields[0], fields[1]

	// A List<T> parameter classifies as its element type, with the name
	// marked as list-valued.
	if strings.HasPrefix(typ, "List<") && strings.HasSuffix(typ, ">") && len(typ) > len("List<>") {
		typ = typ[len("List<") : len(typ)-1]
		name += "List"
	}

	switch strings.ToLower(typ) {
	case "long", "int", "integer":
		return Parameter{Name: name, Kind: Number}, nil
	case "string", "char", "double", "boolean", "datatable":
		return Parameter{Name: name, Kind: Text}, nil
	case "date":
		return Parameter{Name: name, Kind: Date}, nil
	}

	p.registry.AddEnumeration(typ)
	return Parameter{Name: name, Kind: Enum, EnumType: typ}, nil
}
