// Package diff computes field-level differences between a persisted record
// and an edited form, for change previews and audit trails. It is pure and
// never panics on malformed input: unresolvable fields read as nil and fall
// out of the comparison.
package diff

import (
	"fmt"
	"strings"
)

// Record is a loosely-typed view of an entity, keyed by field name. Both
// sides of a comparison use this shape so the differ stays independent of
// any concrete entity type.
type Record map[string]any

// FieldSpec declares one comparable field. The zero value is inert. Key
// alone compares the same-named field on both records; DBKey/FormKey split
// the lookup per side; OldValue/NewValue override lookup entirely, e.g. to
// resolve a foreign-key id to a display name.
type FieldSpec struct {
	Label    string
	Key      string
	DBKey    string
	FormKey  string
	OldValue func(oldRec, newRec Record) any
	NewValue func(oldRec, newRec Record) any
}

// Key builds the bare-name spec form: compare the same key on both sides.
func Key(name string) FieldSpec {
	return FieldSpec{Key: name}
}

// Change reports one differing field.
type Change struct {
	Key      string `json:"key"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// Compute returns the fields whose effective values differ, in spec order.
// A nil record on either side means there is no diff context (create mode,
// form not yet populated) and yields an empty slice.
//
// A change is reported only when the two values are unequal under coercive
// string comparison ("1" equals 1) AND at least one of them is truthy.
// Transitions between falsy representations (nil vs "" vs 0) are suppressed:
// the edit forms round-trip absent values through several zero shapes and
// reporting those as changes is pure noise.
func Compute(oldRec, newRec Record, specs []FieldSpec) []Change {
	changes := []Change{}
	if oldRec == nil || newRec == nil {
		return changes
	}
	for _, spec := range specs {
		oldValue := resolveOld(spec, oldRec, newRec)
		newValue := resolveNew(spec, oldRec, newRec)
		if !truthy(oldValue) && !truthy(newValue) {
			continue
		}
		if stringify(oldValue) == stringify(newValue) {
			continue
		}
		changes = append(changes, Change{
			Key:      spec.label(),
			OldValue: oldValue,
			NewValue: newValue,
		})
	}
	return changes
}

func (s FieldSpec) label() string {
	switch {
	case s.Label != "":
		return s.Label
	case s.Key != "":
		return s.Key
	case s.DBKey != "":
		return s.DBKey
	default:
		return s.FormKey
	}
}

func resolveOld(spec FieldSpec, oldRec, newRec Record) any {
	if spec.OldValue != nil {
		return spec.OldValue(oldRec, newRec)
	}
	if spec.DBKey != "" {
		return oldRec[spec.DBKey]
	}
	return oldRec[spec.Key]
}

func resolveNew(spec FieldSpec, oldRec, newRec Record) any {
	if spec.NewValue != nil {
		return spec.NewValue(oldRec, newRec)
	}
	if spec.FormKey != "" {
		return newRec[spec.FormKey]
	}
	return newRec[spec.Key]
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

// stringify normalizes both sides to one representation so numeric ids stored
// as strings compare equal to their numeric form. Only nil renders empty;
// falsy numbers and bools keep their printed form so 0 equals "0" but not "".
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		// JSON decodes every number as float64; render integral values
		// without the trailing ".0" so they match their string twins.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case float32:
		return stringify(float64(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
