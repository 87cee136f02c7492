package agent

// DefaultModel is the model both agents start with.
const DefaultModel = "gpt-4o-mini"

// selectable is the fixed list of models either agent may use.
var selectable = []string{
	"gpt-4o",
	"gpt-4o-mini",
	"o1-mini",
	"o1-preview",
	"gpt-3.5-turbo",
}

// Models returns the selectable model list. Callers receive a copy; the list
// itself is immutable.
func Models() []string {
	return append([]string(nil), selectable...)
}

// ValidModel reports whether name is in the selectable list.
func ValidModel(name string) bool {
	for _, m := range selectable {
		if m == name {
			return true
		}
	}
	return false
}
