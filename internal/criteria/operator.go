package criteria

import (
	"fmt"
	"strings"
)

// Operator is a comparison operator of a Filter.
// The set is closed: exactly the six constants below exist.
type Operator int

const (
	Equal Operator = iota
	NotEqual
	GT
	LT
	Contains
	NotContains
)

// operatorInfo holds the spellings of an operator.
type operatorInfo struct {
	name   string // name form, matched case-insensitively
	symbol string // backend symbol
	alias  string // symbolic form accepted when parsing ("" if none)
}

var operators = [...]operatorInfo{
	Equal:       {name: "EQUAL", symbol: "=", alias: "="},
	NotEqual:    {name: "NOT_EQUAL", symbol: "!=", alias: "!="},
	GT:          {name: "GT", symbol: ">", alias: ">"},
	LT:          {name: "LT", symbol: "<", alias: "<"},
	Contains:    {name: "CONTAINS", symbol: "like"},
	NotContains: {name: "NOT_CONTAINS", symbol: "not like"},
}

// Operators returns all operators in declaration order.
func Operators() []Operator {
	return []Operator{Equal, NotEqual, GT, LT, Contains, NotContains}
}

// ParseOperator parses an operator from its symbolic form ("=", "!=", ">",
// "<") or its name form ("EQUAL", "CONTAINS", ...; case-insensitive).
func ParseOperator(s string) (Operator, error) {
	for i, info := range operators {
		if info.alias != "" && s == info.alias {
			return Operator(i), nil
		}
		if strings.EqualFold(s, info.name) {
			return Operator(i), nil
		}
	}
	return 0, newError(ErrCodeInvalidOperator, "operator", "unrecognized operator %q", s)
}

// Valid reports whether o is one of the six operators.
func (o Operator) Valid() bool {
	return o >= Equal && o <= NotContains
}

// Symbol returns the backend symbol of the operator:
// "=", "!=", ">", "<", "like" or "not like".
func (o Operator) Symbol() string {
	if !o.Valid() {
		return ""
	}
	return operators[o].symbol
}

// IsContaining reports whether the operator performs pattern matching.
// Values of containing operators are wrapped in wildcards by the converter.
func (o Operator) IsContaining() bool {
	return o == Contains || o == NotContains
}

// String returns the name form of the operator.
func (o Operator) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operators[o].name
}
