package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/officedesk/pkg/crud"
	"github.com/mesh-intelligence/officedesk/pkg/crud/crudtest"
	"github.com/mesh-intelligence/officedesk/pkg/types"
)

func attachedBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach())
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestTable_Backend(t *testing.T) {
	crudtest.RunBackendSuite(t, func(t *testing.T) crud.Backend[types.Office] {
		tbl, err := NewTable[types.Office](attachedBackend(t), types.TableOffices)
		require.NoError(t, err)
		return tbl
	})
}

func TestTable_TablesAreIndependent(t *testing.T) {
	b := attachedBackend(t)
	offices, err := NewTable[types.Office](b, types.TableOffices)
	require.NoError(t, err)
	employees, err := NewTable[types.Employee](b, types.TableEmployees)
	require.NoError(t, err)

	_, err = offices.Create(types.Office{Name: "HQ", Domain: "hq.example.com"})
	require.NoError(t, err)
	e, err := employees.Create(types.Employee{Name: "Alice", EmpID: "E001", Domain: "hq.example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, e.ID, "each table numbers its own records")

	list, err := employees.List()
	require.NoError(t, err)
	assert.Equal(t, []types.Employee{{ID: 1, Name: "Alice", EmpID: "E001", Domain: "hq.example.com"}}, list)
	assert.Equal(t, types.TableEmployees, employees.Name())
}

func TestTable_DrivesPage(t *testing.T) {
	tbl, err := NewTable[types.Employee](attachedBackend(t), types.TableEmployees)
	require.NoError(t, err)
	p := crud.NewPage[types.Employee](tbl)
	require.NoError(t, p.Seed(types.SeedEmployees()...))

	require.NoError(t, p.RequestDelete(1))
	require.NoError(t, p.ConfirmDelete())

	require.NoError(t, p.SetDraft(types.FieldName, "Eve"))
	require.NoError(t, p.SetDraft(types.FieldEmpID, "E003"))
	require.NoError(t, p.SetDraft(types.FieldDomain, "x.com"))
	created, errs, err := p.Create()
	require.NoError(t, err)
	require.True(t, errs.Valid())
	assert.Equal(t, 3, created.ID)

	list, err := p.Records()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bob", list[0].Name)
	assert.Equal(t, "Eve", list[1].Name)
}

func TestRecordJSONRoundTrip(t *testing.T) {
	in := types.Employee{ID: 4, Name: "R&D \"lead\"", EmpID: "E004", Domain: "rnd.example.com"}
	body, err := encodeRecord(in)
	require.NoError(t, err)
	assert.Contains(t, body, `"empid":"E004"`)

	out, err := decodeRecord[types.Employee](body)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = decodeRecord[types.Employee]("{not json")
	assert.Error(t, err)
}
