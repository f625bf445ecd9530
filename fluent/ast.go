package fluent

// Resource is a parsed Fluent file: an ordered set of messages keyed by
// identifier. Resources are immutable once parsed.
type Resource struct {
	// Name is the origin of the resource, usually a file path. It is only
	// used in error messages and lint reports.
	Name     string
	Messages []*Message

	index map[string]*Message
}

// Message returns the message with the given key, or nil.
func (r *Resource) Message(key string) *Message {
	return r.index[key]
}

// Keys returns all message keys in source order.
func (r *Resource) Keys() []string {
	keys := make([]string, len(r.Messages))
	for i, m := range r.Messages {
		keys[i] = m.Key
	}
	return keys
}

// Message is a single `key = pattern` entry.
type Message struct {
	Key string
	// Comment holds the # comment lines immediately preceding the entry,
	// joined with newlines. Empty when the entry has no comment.
	Comment string
	Line    int
	Value   Pattern
}

// Pattern is the value of a message or variant: a sequence of literal text
// and placeables.
type Pattern []Element

// Element is a pattern element: Text, *Placeable.
type Element interface{ element() }

// Text is a literal run of characters.
type Text string

func (Text) element() {}

// Placeable is a `{ ... }` expression embedded in a pattern.
type Placeable struct {
	Expr Expression
}

func (*Placeable) element() {}

// Expression is a placeable expression: *VariableReference, *SelectExpression.
type Expression interface{ expression() }

// VariableReference is `$name`: a caller-supplied argument.
type VariableReference struct {
	Name string
}

func (*VariableReference) expression() {}

// SelectExpression is `{ $selector -> [key] ... *[key] ... }`.
type SelectExpression struct {
	Selector VariableReference
	Variants []Variant
}

func (*SelectExpression) expression() {}

// DefaultVariant returns the `*`-marked variant. The parser guarantees
// exactly one exists.
func (s *SelectExpression) DefaultVariant() Variant {
	for _, v := range s.Variants {
		if v.Default {
			return v
		}
	}
	// Unreachable for parsed resources.
	return s.Variants[len(s.Variants)-1]
}

// Variant is one `[key] pattern` branch of a select expression. Key is
// either a CLDR plural category (one, other, ...) or an exact number.
type Variant struct {
	Key     string
	Default bool
	Value   Pattern
}

// Variables returns the set of variable names a pattern can reference,
// including selector variables and variables inside variants.
func (p Pattern) Variables() map[string]struct{} {
	vars := map[string]struct{}{}
	p.collectVariables(vars)
	return vars
}

func (p Pattern) collectVariables(vars map[string]struct{}) {
	for _, el := range p {
		pl, ok := el.(*Placeable)
		if !ok {
			continue
		}
		switch expr := pl.Expr.(type) {
		case *VariableReference:
			vars[expr.Name] = struct{}{}
		case *SelectExpression:
			vars[expr.Selector.Name] = struct{}{}
			for _, v := range expr.Variants {
				v.Value.collectVariables(vars)
			}
		}
	}
}
