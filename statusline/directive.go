// Package statusline renders the tmux status line from a list of format
// tokens.
package statusline

// Directive identifies what a format token expands to.
type Directive int

const (
	// Literal tokens are emitted verbatim.
	Literal Directive = iota
	Client
	Login
	Add
	Edit
	Delete
	ReconcileAdd
	ReconcileEdit
	Status
)

var directiveNames = map[string]Directive{
	"client":         Client,
	"login":          Login,
	"add":            Add,
	"edit":           Edit,
	"delete":         Delete,
	"reconcile_add":  ReconcileAdd,
	"reconcile_edit": ReconcileEdit,
	"status":         Status,
}

// statusParts is the fixed order in which the status directive expands.
var statusParts = []Directive{Add, Edit, Delete, ReconcileAdd, ReconcileEdit}

// ParseDirective maps a keyword to its directive. Anything else, including
// keywords in a different case, is a literal.
func ParseDirective(token string) Directive {
	if d, ok := directiveNames[token]; ok {
		return d
	}
	return Literal
}

// String returns the keyword of d, or "literal".
func (d Directive) String() string {
	for name, dir := range directiveNames {
		if dir == d {
			return name
		}
	}
	return "literal"
}

// needsLogin reports whether the directive renders nothing while logged out.
func (d Directive) needsLogin() bool {
	switch d {
	case Add, Edit, Delete, ReconcileAdd, ReconcileEdit:
		return true
	default:
		return false
	}
}

// Token is a compiled format entry.
type Token struct {
	Directive Directive
	Text      string
}

// Compile classifies every format entry once, ahead of rendering.
func Compile(format []string) []Token {
	tokens := make([]Token, len(format))
	for i, text := range format {
		tokens[i] = Token{Directive: ParseDirective(text), Text: text}
	}
	return tokens
}
