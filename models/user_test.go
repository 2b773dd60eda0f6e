package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCan_AdminHoldsEveryCapability(t *testing.T) {
	admin := &User{ID: "admin-uuid", Role: AdminRole}

	assert.True(t, admin.Can(ActionSubscribe))
	assert.True(t, admin.Can(ActionUploadContent))
	assert.True(t, admin.Can(ActionDeleteContent))
}

func TestCan_UserCanOnlySubscribe(t *testing.T) {
	user := &User{ID: "user-uuid", Role: UserRole}

	assert.True(t, user.Can(ActionSubscribe))
	assert.False(t, user.Can(ActionUploadContent))
	assert.False(t, user.Can(ActionDeleteContent))
}

func TestCan_NilUserHoldsNothing(t *testing.T) {
	var user *User

	assert.False(t, user.Can(ActionSubscribe))
	assert.False(t, user.Can(ActionUploadContent))
}
