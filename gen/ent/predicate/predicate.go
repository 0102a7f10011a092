// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// DocumentLog is the predicate function for documentlog builders.
type DocumentLog func(*sql.Selector)

// InsurancePolicy is the predicate function for insurancepolicy builders.
type InsurancePolicy func(*sql.Selector)

// PremiumRecord is the predicate function for premiumrecord builders.
type PremiumRecord func(*sql.Selector)
