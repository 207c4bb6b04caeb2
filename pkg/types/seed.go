package types

// SeedOffices returns the demo offices a fresh session starts with.
// IDs are left zero; the store assigns them on create.
func SeedOffices() []Office {
	return []Office{
		{Name: "HQ", Domain: "hq.example.com"},
		{Name: "R&D", Domain: "rnd.example.com"},
	}
}

// SeedEmployees returns the demo employees a fresh session starts with.
func SeedEmployees() []Employee {
	return []Employee{
		{Name: "Alice", EmpID: "E001", Domain: "hq.example.com"},
		{Name: "Bob", EmpID: "E002", Domain: "rnd.example.com"},
	}
}
