// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)

// RCAReport is the predicate function for rcareport builders.
type RCAReport func(*sql.Selector)
