package crud_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/officedesk/pkg/crud"
)

func TestNotificationChannel_Replaces(t *testing.T) {
	var c crud.NotificationChannel
	_, ok := c.Current()
	assert.False(t, ok)

	c.Error("first")
	c.Success("second")

	n, ok := c.Current()
	assert.True(t, ok)
	assert.Equal(t, crud.Notification{Kind: crud.KindSuccess, Message: "second"}, n)
}
