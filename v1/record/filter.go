package record

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ohler55/ojg/jp"
)

// Filter matches records against a JSONPath expression.
type Filter struct {
	expr jp.Expr
}

// ParseFilter compiles a JSONPath expression into a Filter.
func ParseFilter(expression string) (*Filter, error) {
	expr, err := jp.ParseString(expression)
	if err != nil {
		return nil, fmt.Errorf("parse filter expression %q: %w", expression, err)
	}
	return &Filter{expr: expr}, nil
}

// Matches reports whether the expression selects at least one node in the
// record's JSON form.
func (f *Filter) Matches(r Record) bool {
	return len(f.expr.Get(r.document())) > 0
}

// document is the record's JSON form as native data for JSONPath
// evaluation. Key and value text that parses as JSON becomes structured
// data so expressions can reach into decoded payloads.
func (r Record) document() map[string]interface{} {
	headers := make(map[string]interface{}, len(r.Headers))
	for k, v := range r.Headers {
		headers[k] = v
	}

	return map[string]interface{}{
		"topic":     r.Topic,
		"partition": int64(r.Partition),
		"offset":    r.Offset,
		"key":       parseMaybeJSON(r.Key),
		"headers":   headers,
		"value":     parseMaybeJSON(r.Value),
		"timestamp": r.Timestamp.Format(time.RFC3339Nano),
	}
}

// parseMaybeJSON returns the text as structured data when it parses as JSON
// and as-is otherwise.
func parseMaybeJSON(text string) interface{} {
	var doc interface{}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return text
	}
	return doc
}
