package graphql

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// OperationType is the GraphQL operation keyword.
type OperationType string

const (
	QueryOperation    OperationType = "query"
	MutationOperation OperationType = "mutation"
)

// EnumValue is implemented by types rendered as bare GraphQL enum literals.
type EnumValue interface {
	EnumValue() string
}

// Enum is a bare enum literal such as GIT or BASIC.
type Enum string

func (e Enum) EnumValue() string { return string(e) }

// Argument is a single named field argument.
type Argument struct {
	Name  string
	Value interface{}
}

// Arg builds an Argument. Nil values are left out of the document.
func Arg(name string, value interface{}) Argument {
	return Argument{Name: name, Value: value}
}

// Operation is one root field of a query or mutation with its arguments.
type Operation struct {
	Type OperationType
	Name string
	Args []Argument
}

// NewQuery creates a query operation.
func NewQuery(name string, args ...Argument) *Operation {
	return &Operation{Type: QueryOperation, Name: name, Args: args}
}

// NewMutation creates a mutation operation.
func NewMutation(name string, args ...Argument) *Operation {
	return &Operation{Type: MutationOperation, Name: name, Args: args}
}

// ResultPath is where the operation's result lives in the envelope.
func (o *Operation) ResultPath() string {
	return "data." + o.Name
}

// Projection is the field selection set requested for an operation.
type Projection struct {
	fields []projectionField
}

type projectionField struct {
	name string
	sub  *Projection
}

// NewProjection starts a selection set with the given scalar fields.
func NewProjection(fields ...string) *Projection {
	return (&Projection{}).Field(fields...)
}

// Field adds scalar fields.
func (p *Projection) Field(names ...string) *Projection {
	for _, name := range names {
		p.fields = append(p.fields, projectionField{name: name})
	}
	return p
}

// Sub adds an object field with its own selection set.
func (p *Projection) Sub(name string, sub *Projection) *Projection {
	p.fields = append(p.fields, projectionField{name: name, sub: sub})
	return p
}

// Empty reports whether nothing is selected.
func (p *Projection) Empty() bool {
	return p == nil || len(p.fields) == 0
}

// String renders the selection set, e.g. "{ id name owner { id } }".
func (p *Projection) String() string {
	if p.Empty() {
		return ""
	}
	var b strings.Builder
	p.write(&b)
	return b.String()
}

func (p *Projection) write(b *strings.Builder) {
	b.WriteString("{")
	for _, f := range p.fields {
		b.WriteString(" ")
		b.WriteString(f.name)
		if !f.sub.Empty() {
			b.WriteString(" ")
			f.sub.write(b)
		}
	}
	b.WriteString(" }")
}

// Request pairs an operation with its projection.
type Request struct {
	Operation  *Operation
	Projection *Projection
}

// NewRequest builds a Request; projection may be nil for scalar results.
func NewRequest(op *Operation, projection *Projection) Request {
	return Request{Operation: op, Projection: projection}
}

// Serialize renders the GraphQL document text.
func (r Request) Serialize() (string, error) {
	if r.Operation == nil || r.Operation.Name == "" {
		return "", fmt.Errorf("graphql: operation name is required")
	}
	opType := r.Operation.Type
	if opType == "" {
		opType = QueryOperation
	}

	var b strings.Builder
	b.WriteString(string(opType))
	b.WriteString(" { ")
	b.WriteString(r.Operation.Name)

	var args []Argument
	for _, a := range r.Operation.Args {
		if !isNil(a.Value) {
			args = append(args, a)
		}
	}
	if len(args) > 0 {
		b.WriteString("(")
		for i, a := range args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.Name)
			b.WriteString(": ")
			if err := writeValue(&b, a.Value); err != nil {
				return "", fmt.Errorf("graphql: argument %s: %w", a.Name, err)
			}
		}
		b.WriteString(")")
	}

	if !r.Projection.Empty() {
		b.WriteString(" ")
		r.Projection.write(&b)
	}
	b.WriteString(" }")
	return b.String(), nil
}

// writeValue renders v as a GraphQL input literal.
func writeValue(b *strings.Builder, v interface{}) error {
	if isNil(v) {
		b.WriteString("null")
		return nil
	}

	switch t := v.(type) {
	case EnumValue:
		b.WriteString(t.EnumValue())
		return nil
	case json.Number:
		b.WriteString(t.String())
		return nil
	case json.Marshaler:
		raw, err := t.MarshalJSON()
		if err != nil {
			return err
		}
		dec := json.NewDecoder(strings.NewReader(string(raw)))
		dec.UseNumber()
		var generic interface{}
		if err := dec.Decode(&generic); err != nil {
			return err
		}
		return writeValue(b, generic)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		b.WriteString("null")
		return nil
	}

	switch rv.Kind() {
	case reflect.String:
		quoted, _ := json.Marshal(rv.String())
		b.Write(quoted)
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		b.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("unsupported float value %v", f)
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case reflect.Slice, reflect.Array:
		b.WriteString("[")
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := writeValue(b, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		b.WriteString("]")
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		values := make(map[string]interface{}, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
			values[k.String()] = rv.MapIndex(k).Interface()
		}
		sort.Strings(keys)
		return writeObject(b, keys, values)
	case reflect.Struct:
		keys, values := structFields(rv)
		return writeObject(b, keys, values)
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
	return nil
}

func writeObject(b *strings.Builder, keys []string, values map[string]interface{}) error {
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(": ")
		if err := writeValue(b, values[k]); err != nil {
			return fmt.Errorf("field %s: %w", k, err)
		}
	}
	if len(keys) > 0 {
		b.WriteString(" ")
	}
	b.WriteString("}")
	return nil
}

// structFields collects exported fields by their json names, in declaration
// order. Nil fields and empty omitempty fields are left out. Untagged
// embedded structs of exported types are flattened the way encoding/json
// does; a field of the outer struct wins over a promoted one of the same
// name. Unexported embedded types are skipped.
func structFields(rv reflect.Value) ([]string, map[string]interface{}) {
	var keys []string
	values := make(map[string]interface{})
	promoted := make(map[string]bool)
	add := func(name string, v interface{}, fromEmbedded bool) {
		if _, seen := values[name]; !seen {
			keys = append(keys, name)
		} else if fromEmbedded && !promoted[name] {
			return
		}
		values[name] = v
		promoted[name] = fromEmbedded
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag, hasTag := sf.Tag.Lookup("json")
		if tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")

		if sf.Anonymous && parts[0] == "" && sf.IsExported() {
			ft := sf.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				fv := rv.Field(i)
				if fv.Kind() == reflect.Ptr {
					if fv.IsNil() {
						continue
					}
					fv = fv.Elem()
				}
				innerKeys, innerValues := structFields(fv)
				for _, k := range innerKeys {
					add(k, innerValues[k], true)
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		omitEmpty := false
		if hasTag {
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitEmpty = true
				}
			}
		}
		fv := rv.Field(i)
		if isNil(fv.Interface()) || (omitEmpty && fv.IsZero()) {
			continue
		}
		add(name, fv.Interface(), false)
	}
	return keys, values
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
