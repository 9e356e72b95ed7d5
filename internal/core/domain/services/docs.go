// Package services contains domain services that implement business logic
// spanning multiple aggregates or encoding policies that do not belong to a
// single entity, such as role based permission checks.
package services
