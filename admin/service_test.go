package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/demowin23/vilaw-be/lifecycle"
)

func TestSelfProtection(t *testing.T) {
	// The self checks run before any repository access.
	s := NewService(nil)
	audit := &AuditContext{AdminID: 7}

	err := s.DeleteUser(context.Background(), audit, 7)
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)

	_, err = s.ChangeRole(context.Background(), audit, 7, "lawyer")
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)
}

func TestChangeRoleRejectsUnknownRole(t *testing.T) {
	s := NewService(nil)
	audit := &AuditContext{AdminID: 7}

	_, err := s.ChangeRole(context.Background(), audit, 9, "superadmin")
	assert.ErrorIs(t, err, lifecycle.ErrValidation)
}
