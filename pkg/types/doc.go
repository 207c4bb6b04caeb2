// Package types defines the Office and Employee entities, the Record contract
// shared by every entity the CRUD engine manages, field validation rules, and
// the standard error values for the officedesk module.
package types
