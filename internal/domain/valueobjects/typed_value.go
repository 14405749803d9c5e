// Package valueobjects holds small, self-validating types shared across the
// domain entities — in particular TypedValue, the tagged union backing every
// property value in the system (string, number, boolean, or null).
package valueobjects

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Kind identifies the base type a Property (definition) or TypedValue
// carries. It is a closed set: string, number, boolean.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Valid reports whether k is one of the three recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindNumber, KindBoolean:
		return true
	default:
		return false
	}
}

// TypedValue is a tagged union representing the value half of a
// PropertyValue. A TypedValue is either null (IsNull == true, no Kind is
// meaningful) or carries exactly one of Str/Num/Bool according to Kind.
//
// Booleans are deliberately never mistaken for numbers: Kind distinguishes
// them, so a JSON `true`/`false` never satisfies a `number` property.
type TypedValue struct {
	IsNull bool
	Kind   Kind
	Str    string
	Num    float64
	Bool   bool
}

// Null returns the null TypedValue.
func Null() TypedValue { return TypedValue{IsNull: true} }

// NewString wraps a string value.
func NewString(s string) TypedValue { return TypedValue{Kind: KindString, Str: s} }

// NewNumber wraps a float64 value.
func NewNumber(n float64) TypedValue { return TypedValue{Kind: KindNumber, Num: n} }

// NewBool wraps a boolean value.
func NewBool(b bool) TypedValue { return TypedValue{Kind: KindBoolean, Bool: b} }

// MatchesKind reports whether v's runtime kind matches want. Null values
// never match any kind (callers check IsNull separately, per the
// mandatory-property rule: "null" is a distinct absence, not a string/number/
// boolean of the right type).
func (v TypedValue) MatchesKind(want Kind) bool {
	if v.IsNull {
		return false
	}
	return v.Kind == want
}

// Equal compares two TypedValues by kind and value. String comparison is
// exact (case-sensitive) — see the documented asymmetry with allowed-values
// definition-time duplicate detection, which is case-insensitive.
func (v TypedValue) Equal(other TypedValue) bool {
	if v.IsNull != other.IsNull {
		return false
	}
	if v.IsNull {
		return true
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == other.Str
	case KindNumber:
		return v.Num == other.Num
	case KindBoolean:
		return v.Bool == other.Bool
	default:
		return false
	}
}

// String renders the value for error messages (e.g. "Expected one of 1, 2, 3").
func (v TypedValue) String() string {
	if v.IsNull {
		return "null"
	}
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return trimFloat(v.Num)
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// MarshalJSON implements json.Marshaler.
func (v TypedValue) MarshalJSON() ([]byte, error) {
	if v.IsNull {
		return []byte("null"), nil
	}
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBoolean:
		return json.Marshal(v.Bool)
	default:
		return nil, fmt.Errorf("typed value: unknown kind %q", v.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler. The wire format is untagged:
// the caller (Instance Validator) supplies the expected Kind separately and
// checks MatchesKind, since JSON numbers and strings are unambiguous but a
// bare `true`/`false` must still be distinguishable from other kinds.
func (v *TypedValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return v.fromAny(raw)
}

func (v *TypedValue) fromAny(raw any) error {
	switch val := raw.(type) {
	case nil:
		*v = Null()
	case string:
		*v = NewString(val)
	case float64:
		*v = NewNumber(val)
	case bool:
		*v = NewBool(val)
	default:
		return fmt.Errorf("typed value: unsupported JSON value %#v", raw)
	}
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler so TypedValue can be
// embedded directly in a PropertyValue document.
func (v TypedValue) MarshalBSONValue() (bson.Type, []byte, error) {
	if v.IsNull {
		return bson.MarshalValue(nil)
	}
	switch v.Kind {
	case KindString:
		return bson.MarshalValue(v.Str)
	case KindNumber:
		return bson.MarshalValue(v.Num)
	case KindBoolean:
		return bson.MarshalValue(v.Bool)
	default:
		return 0, nil, fmt.Errorf("typed value: unknown kind %q", v.Kind)
	}
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (v *TypedValue) UnmarshalBSONValue(valueType bson.Type, data []byte) error {
	rv := bson.RawValue{Type: valueType, Value: data}
	switch rv.Type {
	case bson.TypeNull, bson.TypeUndefined:
		*v = Null()
		return nil
	case bson.TypeString:
		*v = NewString(rv.StringValue())
		return nil
	case bson.TypeBoolean:
		*v = NewBool(rv.Boolean())
		return nil
	case bson.TypeDouble:
		*v = NewNumber(rv.Double())
		return nil
	case bson.TypeInt32:
		*v = NewNumber(float64(rv.Int32()))
		return nil
	case bson.TypeInt64:
		*v = NewNumber(float64(rv.Int64()))
		return nil
	default:
		return fmt.Errorf("typed value: unsupported bson type %v", rv.Type)
	}
}
