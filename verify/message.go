package verify

import (
	"fmt"
	"github.com/saylorsolutions/verifyx/verify/predicate"
	"reflect"
	"slices"
	"strings"
)

const (
	nullLiteral = "<null>"
	// A zero-length value is <empty>, while a zero-length parameter is bracketed.
	emptyValueLiteral = "<empty>"
	emptyParamLiteral = "[<empty>]"
	// Sentences in a message are separated by two spaces.
	sentenceSep = "  "
)

// BecauseMode controls how a custom explanation set with [Because] is combined with the composed message.
type BecauseMode int

const (
	// BecauseSuffix appends the explanation after the composed message. This is the default.
	BecauseSuffix BecauseMode = iota
	// BecausePrefix places the explanation before the composed message.
	BecausePrefix
	// BecauseInLieu replaces the composed message with the explanation.
	BecauseInLieu
)

// decoration is the caller supplied context that is added to every composed message.
type decoration struct {
	because     string
	becauseMode BecauseMode
	data        map[string]string
}

// compose renders a failure into its diagnostic message.
// The result depends only on its inputs, so identical failures always produce byte-identical messages.
func compose(f *failure, deco decoration) string {
	msg := baseMessage(f)
	if len(deco.because) > 0 {
		switch deco.becauseMode {
		case BecausePrefix:
			msg = deco.because + sentenceSep + msg
		case BecauseInLieu:
			msg = deco.because
		default:
			msg = msg + sentenceSep + deco.because
		}
	}
	if len(deco.data) > 0 {
		msg += sentenceSep + renderData(deco.data)
	}
	return msg
}

func baseMessage(f *failure) string {
	spec := f.entry.spec
	var buf strings.Builder
	fmt.Fprintf(&buf, "Provided value (name: '%s')", f.subject.name)

	switch f.reason {
	case reasonNullSubject:
		if f.element {
			buf.WriteString(" contains an element that is null.")
		} else {
			buf.WriteString(" is null.")
		}
		return buf.String()
	case reasonTypeNotApplicable:
		if f.subject.sequence {
			fmt.Fprintf(&buf, " contains elements of type '%s'", f.subject.declared)
		} else {
			fmt.Fprintf(&buf, " is of type '%s'", f.subject.declared)
		}
		buf.WriteString(", which is not one of the following types: ")
		buf.WriteString(renderTypes(spec.Applicable))
		buf.WriteString(".")
		return buf.String()
	case reasonParameterInvalid:
		p := spec.Params[f.paramIndex]
		buf.Reset()
		fmt.Fprintf(&buf, "Called %s() where parameter '%s' %s.", spec.Name, p.Name, f.problem)
		fmt.Fprintf(&buf, "%sSpecified '%s' is %s.", sentenceSep, p.Name, renderParam(f.params[f.paramIndex]))
		return buf.String()
	}

	if f.element {
		fmt.Fprintf(&buf, " contains an element that is not %s.", spec.Adjective)
		if spec.Style == StylePredicate {
			fmt.Fprintf(&buf, "%sElement value is '%s'.", sentenceSep, renderValue(f.elementValue))
		}
	} else {
		fmt.Fprintf(&buf, " is not %s.", spec.Adjective)
		if spec.Style == StylePredicate {
			fmt.Fprintf(&buf, "%sProvided value is '%s'.", sentenceSep, renderValue(f.subject.value))
		}
	}
	for i, p := range spec.Params {
		fmt.Fprintf(&buf, "%sSpecified '%s' is %s.", sentenceSep, p.Name, renderParam(f.params[i]))
	}
	return buf.String()
}

func renderTypes(types []TypeDescriptor) string {
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = "'" + t.String() + "'"
	}
	return strings.Join(quoted, ", ")
}

func renderData(data map[string]string) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s='%s'", k, data[k])
	}
	return "Data: " + strings.Join(pairs, ", ") + "."
}

// renderValue renders a subject or element value for use inside quotes.
// Strings are used as-is, nil is <null>, and sequences that aren't a [fmt.Stringer] are bracketed lists.
func renderValue(v any) string {
	if predicate.IsNil(v) {
		return nullLiteral
	}
	v = deref(v)
	switch val := v.(type) {
	case string:
		return val
	case []rune:
		return renderRunes(val, emptyValueLiteral)
	case fmt.Stringer:
		return val.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return renderList(rv, emptyValueLiteral)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// renderParam renders a verification parameter, which unlike a subject value isn't wrapped in quotes by the template.
func renderParam(v any) string {
	if predicate.IsNil(v) {
		return nullLiteral
	}
	switch val := v.(type) {
	case string:
		return "'" + val + "'"
	case []rune:
		return renderRunes(val, emptyParamLiteral)
	case fmt.Stringer:
		return val.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return renderList(rv, emptyParamLiteral)
	}
	return renderValue(v)
}

func renderRunes(runes []rune, empty string) string {
	if runes == nil {
		return nullLiteral
	}
	if len(runes) == 0 {
		return empty
	}
	quoted := make([]string, len(runes))
	for i, r := range runes {
		quoted[i] = "'" + string(r) + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func renderList(rv reflect.Value, empty string) string {
	if rv.Len() == 0 {
		return empty
	}
	quoted := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i).Interface()
		if predicate.IsNil(el) {
			quoted[i] = nullLiteral
			continue
		}
		quoted[i] = "'" + renderValue(el) + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
