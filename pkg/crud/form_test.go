package crud_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/officedesk/pkg/crud"
	"github.com/mesh-intelligence/officedesk/pkg/types"
)

func TestCreateForm_InvalidDraft(t *testing.T) {
	store := crud.NewStore[types.Office]()
	var notices crud.NotificationChannel
	var f crud.CreateForm[types.Office]
	require.NoError(t, f.Set(types.FieldName, ""))
	require.NoError(t, f.Set(types.FieldDomain, "nodot"))

	_, errs, err := f.Submit(store, &notices)
	require.NoError(t, err)
	assert.Equal(t, types.FieldErrors{
		types.FieldName:   types.MsgNameRequired,
		types.FieldDomain: types.MsgDomainNoDot,
	}, errs)
	assert.Equal(t, errs, f.Errors())
	assert.Equal(t, types.Office{Domain: "nodot"}, f.Draft(), "draft is kept untouched")
	assert.Equal(t, 0, store.Len())

	n, _ := notices.Current()
	assert.Equal(t, crud.Notification{Kind: crud.KindError, Message: "Please fix validation errors."}, n)
}

func TestCreateForm_ValidDraft(t *testing.T) {
	store := crud.NewStore[types.Employee]()
	var notices crud.NotificationChannel
	var f crud.CreateForm[types.Employee]
	require.NoError(t, f.Set(types.FieldName, " Eve "))
	require.NoError(t, f.Set(types.FieldEmpID, "E003"))
	require.NoError(t, f.Set(types.FieldDomain, "x.com"))

	created, errs, err := f.Submit(store, &notices)
	require.NoError(t, err)
	assert.True(t, errs.Valid())
	assert.Equal(t, types.Employee{ID: 1, Name: "Eve", EmpID: "E003", Domain: "x.com"}, created)
	assert.Equal(t, types.Employee{}, f.Draft(), "draft resets after create")
	assert.Empty(t, f.Errors())

	n, _ := notices.Current()
	assert.Equal(t, crud.Notification{Kind: crud.KindSuccess, Message: "Employee created successfully."}, n)
}

func TestCreateForm_ResetLeavesStoreAndNotice(t *testing.T) {
	store := crud.NewStore[types.Office]()
	var notices crud.NotificationChannel
	var f crud.CreateForm[types.Office]
	require.NoError(t, f.Set(types.FieldName, "x"))
	_, _, err := f.Submit(store, &notices)
	require.NoError(t, err)

	f.Reset()
	assert.Equal(t, types.Office{}, f.Draft())
	assert.Empty(t, f.Errors())

	n, ok := notices.Current()
	assert.True(t, ok)
	assert.Equal(t, crud.KindError, n.Kind, "reset does not clear the banner")
}

func TestCreateForm_BackendFailureKeepsDraft(t *testing.T) {
	store := &failingBackend[types.Office]{Store: crud.NewStore[types.Office](), failOn: crud.OpCreate}
	var notices crud.NotificationChannel
	var f crud.CreateForm[types.Office]
	require.NoError(t, f.Set(types.FieldName, "HQ"))
	require.NoError(t, f.Set(types.FieldDomain, "hq.example.com"))

	_, _, err := f.Submit(store, &notices)
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, "HQ", f.Draft().Name)
	n, _ := notices.Current()
	assert.Equal(t, crud.KindError, n.Kind)
}
