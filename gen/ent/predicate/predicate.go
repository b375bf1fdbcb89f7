// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Billing is the predicate function for billing builders.
type Billing func(*sql.Selector)

// History is the predicate function for history builders.
type History func(*sql.Selector)

// Offer is the predicate function for offer builders.
type Offer func(*sql.Selector)

// PriceList is the predicate function for pricelist builders.
type PriceList func(*sql.Selector)

// Requirement is the predicate function for requirement builders.
type Requirement func(*sql.Selector)

// TenantPriceList is the predicate function for tenantpricelist builders.
type TenantPriceList func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Work is the predicate function for work builders.
type Work func(*sql.Selector)
