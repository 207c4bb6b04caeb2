package types

import "strings"

// Employee is a person identified by an alphanumeric employee number.
type Employee struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	EmpID  string `json:"empid"`
	Domain string `json:"domain"`
}

var employeeFields = []Field{
	{Key: FieldName, Title: "Name"},
	{Key: FieldEmpID, Title: "EmpID"},
	{Key: FieldDomain, Title: "Domain"},
}

var _ Record[Employee] = Employee{}

func (Employee) Entity() string { return "Employee" }

func (e Employee) RecordID() int { return e.ID }

func (e Employee) WithID(id int) Employee {
	e.ID = id
	return e
}

func (Employee) Fields() []Field { return employeeFields }

func (e Employee) Value(key string) (string, error) {
	switch key {
	case FieldName:
		return e.Name, nil
	case FieldEmpID:
		return e.EmpID, nil
	case FieldDomain:
		return e.Domain, nil
	default:
		return "", unknownField(e.Entity(), key)
	}
}

func (e Employee) WithValue(key, value string) (Employee, error) {
	switch key {
	case FieldName:
		e.Name = value
	case FieldEmpID:
		e.EmpID = value
	case FieldDomain:
		e.Domain = value
	default:
		return e, unknownField(e.Entity(), key)
	}
	return e, nil
}

func (e Employee) Trimmed() Employee {
	e.Name = strings.TrimSpace(e.Name)
	e.EmpID = strings.TrimSpace(e.EmpID)
	e.Domain = strings.TrimSpace(e.Domain)
	return e
}

// Validate applies the name, empid, and domain rules.
func (e Employee) Validate() FieldErrors {
	errs := FieldErrors{}
	checkName(errs, e.Name)
	checkEmpID(errs, e.EmpID)
	checkDomain(errs, e.Domain)
	return errs
}
