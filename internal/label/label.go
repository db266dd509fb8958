package label

import (
	"fmt"
	"strings"
)

// Label is a dependency relation assigned to a token by the annotator
type Label string

const (
	Root       Label = "ROOT"
	Target     Label = "TARGET"
	Obj        Label = "OBJ"
	State      Label = "STATE"
	Quality    Label = "QUALITY"
	Time       Label = "TIME"
	NoRelation Label = "-"
)

// All lists every known label in a stable order
var All = []Label{Root, Target, Obj, State, Quality, Time, NoRelation}

// Parse maps a raw label string onto the enumeration.
// Matching ignores surrounding whitespace and case.
func Parse(s string) (Label, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, l := range All {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown dependency label %q", s)
}

func (l Label) String() string {
	return string(l)
}

// Token is one word of an annotated sentence.
// Head is the index of the token's syntactic head within the same sentence;
// a ROOT token points at itself.
type Token struct {
	Text  string
	Label Label
	Head  int
}

func (t Token) String() string {
	return fmt.Sprintf("(%s, %s, %d)", t.Text, t.Label, t.Head)
}
