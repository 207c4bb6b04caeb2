package types

import (
	"regexp"
	"strings"
)

// Validation messages shown beneath form inputs.
const (
	MsgNameRequired   = "Name is required."
	MsgDomainRequired = "Domain is required."
	MsgDomainNoDot    = "Domain must contain a dot."
	MsgEmpIDRequired  = "EmpID is required."
	MsgEmpIDNotAlnum  = "EmpID must be alphanumeric."
)

// Field keys shared by the entities.
const (
	FieldName   = "name"
	FieldDomain = "domain"
	FieldEmpID  = "empid"
)

var alphanumeric = regexp.MustCompile(`^[A-Za-z0-9]+$`)

func checkName(errs FieldErrors, name string) {
	if strings.TrimSpace(name) == "" {
		errs[FieldName] = MsgNameRequired
	}
}

func checkDomain(errs FieldErrors, domain string) {
	d := strings.TrimSpace(domain)
	switch {
	case d == "":
		errs[FieldDomain] = MsgDomainRequired
	case !strings.Contains(d, "."):
		errs[FieldDomain] = MsgDomainNoDot
	}
}

func checkEmpID(errs FieldErrors, empID string) {
	id := strings.TrimSpace(empID)
	switch {
	case id == "":
		errs[FieldEmpID] = MsgEmpIDRequired
	case !alphanumeric.MatchString(id):
		errs[FieldEmpID] = MsgEmpIDNotAlnum
	}
}
