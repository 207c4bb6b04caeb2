package types

import "strings"

// Office is a site that employees belong to by domain.
type Office struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

var officeFields = []Field{
	{Key: FieldName, Title: "Name"},
	{Key: FieldDomain, Title: "Domain"},
}

var _ Record[Office] = Office{}

func (Office) Entity() string { return "Office" }

func (o Office) RecordID() int { return o.ID }

func (o Office) WithID(id int) Office {
	o.ID = id
	return o
}

func (Office) Fields() []Field { return officeFields }

func (o Office) Value(key string) (string, error) {
	switch key {
	case FieldName:
		return o.Name, nil
	case FieldDomain:
		return o.Domain, nil
	default:
		return "", unknownField(o.Entity(), key)
	}
}

func (o Office) WithValue(key, value string) (Office, error) {
	switch key {
	case FieldName:
		o.Name = value
	case FieldDomain:
		o.Domain = value
	default:
		return o, unknownField(o.Entity(), key)
	}
	return o, nil
}

func (o Office) Trimmed() Office {
	o.Name = strings.TrimSpace(o.Name)
	o.Domain = strings.TrimSpace(o.Domain)
	return o
}

// Validate applies the name and domain rules.
func (o Office) Validate() FieldErrors {
	errs := FieldErrors{}
	checkName(errs, o.Name)
	checkDomain(errs, o.Domain)
	return errs
}
