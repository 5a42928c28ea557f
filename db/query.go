package db

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Content search over the store collections. Conditions use the form
// "path operator value" with optional "and"/"or" separators between them,
// e.g. ?query=genre equals "electronic"&query=and&query=trackCount greaterthan 8
// Entities are matched against their JSON form, so paths follow the wire
// field names (title, albumId, stock, ...).

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

var searchOperators = map[string]bool{
	"equals": true, "notequals": true,
	"contains": true, "startswith": true, "endswith": true,
	"greaterthan": true, "lessthan": true,
	"greaterthanorequals": true, "lessthanorequals": true,
}

// insensitiveOperators are the operators that accept the -insensitive suffix.
var insensitiveOperators = map[string]bool{
	"equals": true, "notequals": true,
	"contains": true, "startswith": true, "endswith": true,
}

// SearchParams selects a collection and filters it.
type SearchParams struct {
	Collection string   // albums, songs, podcasts, media, products, uploads, comments
	Query      []string // alternating condition and "and"/"or" parts
	SortBy     string   // entity field path; default "id"
	Order      string   // "asc" (default) or "desc"
	Page       int      // 1-based
	Limit      int      // per page, max 100
}

type condition struct {
	path        string
	operator    string // base operator, suffix stripped
	insensitive bool
	value       conditionValue
	original    string
}

// conditionValue is the typed right-hand side of a condition.
type conditionValue struct {
	str    string
	num    float64
	boolV  bool
	kind   gjson.Type // String, Number, True/False or Null
}

// Search filters, sorts and paginates one collection. Returns the matching
// entities in JSON form plus the total match count before pagination.
func (db *Database) Search(params SearchParams) ([]json.RawMessage, int, error) {
	conditions, logic, err := parseQuery(params.Query)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid query: %w", err)
	}

	rows, err := db.collectionJSON(params.Collection)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		ok, err := evaluate(row, conditions, logic)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			matched = append(matched, row)
		}
	}
	total := len(matched)

	if err := sortRows(matched, params.SortBy, params.Order); err != nil {
		return nil, 0, err
	}

	page := params.Page
	if page <= 0 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	start := (page - 1) * limit
	if start >= total {
		return []json.RawMessage{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// collectionJSON snapshots a collection and marshals each entity once.
func (db *Database) collectionJSON(name string) ([]json.RawMessage, error) {
	var items interface{}
	switch strings.ToLower(name) {
	case "albums":
		items = db.GetAllAlbums()
	case "songs":
		items = db.GetAllSongs()
	case "podcasts":
		items = db.GetAllPodcasts()
	case "media":
		items = db.GetAllMedia()
	case "products":
		items = db.GetAllProducts()
	case "uploads":
		items = db.GetAllUploads()
	case "comments":
		items = db.GetAllComments()
	default:
		return nil, fmt.Errorf("unknown collection '%s'", name)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collection '%s': %w", name, err)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to split collection '%s': %w", name, err)
	}
	return rows, nil
}

// parseQuery splits the raw query parts into conditions and the logical
// operators between them. Parts alternate: condition, and/or, condition, ...
func parseQuery(parts []string) ([]condition, []string, error) {
	var conditions []condition
	var logic []string

	expectingCondition := true
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, nil, fmt.Errorf("query part at index %d is empty", i)
		}
		if expectingCondition {
			cond, err := parseCondition(part)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid condition at index %d ('%s'): %w", i, part, err)
			}
			conditions = append(conditions, cond)
		} else {
			op := strings.ToLower(part)
			if op != "and" && op != "or" {
				return nil, nil, fmt.Errorf("invalid logical operator at index %d: '%s', expected 'and' or 'or'", i, part)
			}
			logic = append(logic, op)
		}
		expectingCondition = !expectingCondition
	}

	if len(parts) > 0 && expectingCondition {
		return nil, nil, fmt.Errorf("query must end with a condition, not a logical operator")
	}
	return conditions, logic, nil
}

// parseCondition parses "path operator value" into a typed condition.
func parseCondition(s string) (condition, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return condition{}, fmt.Errorf("condition must be 'path operator value'")
	}

	path := fields[0]
	operator := strings.ToLower(fields[1])
	insensitive := false
	if base, ok := strings.CutSuffix(operator, "-insensitive"); ok {
		if !insensitiveOperators[base] {
			return condition{}, fmt.Errorf("operator '%s' does not support case-insensitive matching", base)
		}
		operator = base
		insensitive = true
	}
	if !searchOperators[operator] {
		return condition{}, fmt.Errorf("invalid operator '%s'", operator)
	}

	// The value is everything after the operator token, spacing preserved
	// for quoted strings.
	opIdx := strings.Index(s, fields[1])
	rawValue := strings.TrimSpace(s[opIdx+len(fields[1]):])

	value, err := parseValueLiteral(rawValue)
	if err != nil {
		return condition{}, err
	}

	return condition{
		path:        path,
		operator:    operator,
		insensitive: insensitive,
		value:       value,
		original:    s,
	}, nil
}

// parseValueLiteral types the right-hand side: quoted string, null, number,
// boolean, or bare string as a fallback.
func parseValueLiteral(raw string) (conditionValue, error) {
	if raw == "" {
		return conditionValue{}, fmt.Errorf("condition value is empty")
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return conditionValue{str: raw[1 : len(raw)-1], kind: gjson.String}, nil
	}
	if raw == "null" {
		return conditionValue{kind: gjson.Null}, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return conditionValue{num: f, kind: gjson.Number}, nil
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		kind := gjson.False
		if b {
			kind = gjson.True
		}
		return conditionValue{boolV: b, kind: kind}, nil
	}
	return conditionValue{str: raw, kind: gjson.String}, nil
}

// evaluate applies the condition chain to one entity, left to right.
func evaluate(row json.RawMessage, conditions []condition, logic []string) (bool, error) {
	if len(conditions) == 0 {
		return true, nil
	}

	result, err := evaluateCondition(row, conditions[0])
	if err != nil {
		return false, err
	}
	for i, op := range logic {
		next, err := evaluateCondition(row, conditions[i+1])
		if err != nil {
			return false, err
		}
		if op == "and" {
			result = result && next
		} else {
			result = result || next
		}
	}
	return result, nil
}

// evaluateCondition checks one condition against one entity. A path that
// does not exist in the entity simply fails to match; it is not an error,
// so mixed collections and optional fields stay queryable.
func evaluateCondition(row json.RawMessage, cond condition) (bool, error) {
	target := gjson.GetBytes(row, cond.path)
	if !target.Exists() {
		return false, nil
	}

	switch target.Type {
	case gjson.String:
		return compareString(target.String(), cond)
	case gjson.Number:
		return compareNumber(target.Float(), cond)
	case gjson.True, gjson.False:
		return compareBool(target.Bool(), cond)
	case gjson.Null:
		switch cond.operator {
		case "equals":
			return cond.value.kind == gjson.Null, nil
		case "notequals":
			return cond.value.kind != gjson.Null, nil
		}
		return false, fmt.Errorf("operator '%s' is invalid for null values ('%s')", cond.operator, cond.original)
	default:
		return false, fmt.Errorf("operator '%s' cannot compare arrays or objects ('%s')", cond.operator, cond.original)
	}
}

func compareString(target string, cond condition) (bool, error) {
	if cond.value.kind != gjson.String {
		if cond.operator == "notequals" {
			return true, nil
		}
		return false, fmt.Errorf("type mismatch: cannot compare string field with non-string value ('%s')", cond.original)
	}

	value := cond.value.str
	if cond.insensitive {
		target = strings.ToLower(target)
		value = strings.ToLower(value)
	}

	switch cond.operator {
	case "equals":
		return target == value, nil
	case "notequals":
		return target != value, nil
	case "contains":
		return strings.Contains(target, value), nil
	case "startswith":
		return strings.HasPrefix(target, value), nil
	case "endswith":
		return strings.HasSuffix(target, value), nil
	default:
		return false, fmt.Errorf("type mismatch: cannot apply numeric operator '%s' to string value ('%s')", cond.operator, cond.original)
	}
}

func compareNumber(target float64, cond condition) (bool, error) {
	if cond.value.kind != gjson.Number {
		if cond.operator == "notequals" {
			return true, nil
		}
		return false, fmt.Errorf("type mismatch: value is not a valid number ('%s')", cond.original)
	}

	value := cond.value.num
	switch cond.operator {
	case "equals":
		return target == value, nil
	case "notequals":
		return target != value, nil
	case "greaterthan":
		return target > value, nil
	case "lessthan":
		return target < value, nil
	case "greaterthanorequals":
		return target >= value, nil
	case "lessthanorequals":
		return target <= value, nil
	default:
		return false, fmt.Errorf("type mismatch: cannot apply string operator '%s' to numeric value ('%s')", cond.operator, cond.original)
	}
}

func compareBool(target bool, cond condition) (bool, error) {
	if cond.value.kind != gjson.True && cond.value.kind != gjson.False {
		if cond.operator == "notequals" {
			return true, nil
		}
		return false, fmt.Errorf("type mismatch: value is not a valid boolean ('%s')", cond.original)
	}

	switch cond.operator {
	case "equals":
		return target == cond.value.boolV, nil
	case "notequals":
		return target != cond.value.boolV, nil
	default:
		return false, fmt.Errorf("operator '%s' is invalid for boolean comparison ('%s')", cond.operator, cond.original)
	}
}

// sortRows orders the matched entities by a field path. Numeric fields sort
// numerically, everything else as strings. Default is ascending by id.
func sortRows(rows []json.RawMessage, sortBy, order string) error {
	if sortBy == "" {
		sortBy = "id"
	}
	switch strings.ToLower(order) {
	case "", "asc", "desc":
	default:
		return fmt.Errorf("invalid order value: '%s', expected 'asc' or 'desc'", order)
	}
	descending := strings.ToLower(order) == "desc"

	sort.SliceStable(rows, func(i, j int) bool {
		a := gjson.GetBytes(rows[i], sortBy)
		b := gjson.GetBytes(rows[j], sortBy)

		var less bool
		if a.Type == gjson.Number && b.Type == gjson.Number {
			less = a.Float() < b.Float()
		} else {
			less = a.String() < b.String()
		}
		if descending {
			return !less && !(a.Raw == b.Raw)
		}
		return less
	})
	return nil
}
