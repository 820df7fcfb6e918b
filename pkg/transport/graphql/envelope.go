package graphql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/saturnines/litmus-go/pkg/core"
	"github.com/saturnines/litmus-go/pkg/errors"
)

// Envelope is a decoded GraphQL response.
type Envelope struct {
	Errors     gqlerror.List
	Extensions map[string]interface{}

	doc map[string]interface{}
}

// ParseEnvelope decodes a GraphQL response body. The top level must be a
// JSON object.
func ParseEnvelope(body []byte) (*Envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode GraphQL response: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("decode GraphQL response: top level is null")
	}

	var head struct {
		Errors     gqlerror.List          `json:"errors"`
		Extensions map[string]interface{} `json:"extensions"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return nil, fmt.Errorf("decode GraphQL errors: %w", err)
	}

	return &Envelope{Errors: head.Errors, Extensions: head.Extensions, doc: doc}, nil
}

// Err returns an ErrGraphQL error when the server reported errors.
func (e *Envelope) Err() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return &errors.ClientError{
		Kind:          errors.ErrGraphQL,
		Message:       e.Errors[0].Message,
		GraphQLErrors: e.Errors,
	}
}

// Lookup returns the raw value at path without any error checks.
func (e *Envelope) Lookup(path string) (interface{}, bool) {
	return core.ExtractField(e.doc, path)
}

// resolve applies the extraction rules: errors win over data, a missing
// or null "data" is an error, and the path must resolve to a non-null value.
func (e *Envelope) resolve(path string) (interface{}, error) {
	if err := e.Err(); err != nil {
		return nil, err
	}

	segments, err := core.ParsePath(path)
	if err != nil {
		return nil, &errors.ClientError{Kind: errors.ErrDecode, Message: "invalid path", Err: err}
	}

	if segments[0].Type == core.FieldSegment && segments[0].Field == "data" {
		if data, ok := e.doc["data"]; !ok || data == nil {
			return nil, &errors.ClientError{Kind: errors.ErrGraphQL, Message: "response has no data"}
		}
	}

	value, found, _ := core.Lookup(e.doc, path)
	if !found {
		return nil, &errors.ClientError{Kind: errors.ErrGraphQL, Message: fmt.Sprintf("%s not found in response", path)}
	}
	if value == nil {
		return nil, &errors.ClientError{Kind: errors.ErrGraphQL, Message: fmt.Sprintf("%s is null", path)}
	}
	return value, nil
}

// ExtractValue returns the scalar at path as a string. Strings come back
// as-is; numbers and booleans in their JSON form.
func (e *Envelope) ExtractValue(path string) (string, error) {
	value, err := e.resolve(path)
	if err != nil {
		return "", err
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", &errors.ClientError{
			Kind:    errors.ErrDecode,
			Message: fmt.Sprintf("%s is not a scalar (%s)", path, kindOf(value)),
		}
	}
}

// ExtractInto decodes the value at path into target.
func (e *Envelope) ExtractInto(path string, target interface{}) error {
	value, err := e.resolve(path)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return &errors.ClientError{Kind: errors.ErrDecode, Message: path, Err: err}
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return &errors.ClientError{Kind: errors.ErrDecode, Message: path, Err: err}
	}
	return nil
}

// ExtractAs decodes the value at path into a new T.
func ExtractAs[T any](env *Envelope, path string) (T, error) {
	var out T
	if err := env.ExtractInto(path, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// String renders the envelope as compact JSON, for logging.
func (e *Envelope) String() string {
	raw, err := json.Marshal(e.doc)
	if err != nil {
		return fmt.Sprintf("<envelope: %v>", err)
	}
	return string(raw)
}

func kindOf(v interface{}) string {
	switch v.(type) {
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	default:
		return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
	}
}
