// Package criteria provides a storage-agnostic description of a query:
// which records to fetch, in what order, and in what page.
//
// A Criteria owns exactly one Filters tree, one Order and an optional
// Pagination. The tree is a boolean composite:
//
//	Filters{And}
//	├── Filter{age > 18}
//	└── Filters{Or}
//	    ├── Filter{name = alice}
//	    └── Filter{name = bob}
//
// SEALED INTERFACES:
//
// Node and Value are sealed using the marker method pattern. Only Filter
// and Filters implement Node; only String, Int, Float and Bool implement
// Value. Backends can therefore use exhaustive type switches:
//
//	switch n := node.(type) {
//	case criteria.Filter:
//	    // leaf predicate
//	case criteria.Filters:
//	    // nested group
//	}
//
// CONSTRUCTION:
//
// Every constructor validates eagerly. Malformed input fails with an *Error
// carrying one of the codes INVALID_OPERATOR, INVALID_FILTER, INVALID_ORDER,
// INVALID_PAGINATION or CRITERIA_TOO_DEEP. Once a Criteria value exists it is
// well formed and immutable; translation into a query never fails for
// domain reasons.
//
// Translation into a concrete query lives in package convert.
package criteria
