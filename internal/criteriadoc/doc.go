// Package criteriadoc loads Criteria from documents on disk.
//
// A document is the record form of a Criteria (see criteria.Primitives)
// written as YAML, JSON or CUE:
//
//	filters:
//	  type: and
//	  children:
//	    - {field: age, operator: ">", value: 18}
//	order_by: id
//	order_type: desc
//
// Unknown keys are rejected. Field names and order_by are normalized to
// Unicode NFC before the Criteria is built; values are left as written.
package criteriadoc
