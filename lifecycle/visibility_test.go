package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleLawyer, ParseRole("lawyer"))
	assert.Equal(t, RoleCollaborator, ParseRole("collaborator"))
	assert.Equal(t, RoleUser, ParseRole("user"))
	assert.Equal(t, RoleNone, ParseRole(""))
	assert.Equal(t, RoleNone, ParseRole("superuser"))
}

func TestElevated(t *testing.T) {
	assert.True(t, RoleAdmin.Elevated())
	assert.True(t, RoleLawyer.Elevated())
	assert.True(t, RoleCollaborator.Elevated())
	assert.False(t, RoleUser.Elevated())
	assert.False(t, RoleNone.Elevated())
}

func TestApprovalCondition(t *testing.T) {
	tests := []struct {
		name string
		role Role
		hint PendingHint
		want string
	}{
		{"admin no hint sees everything", RoleAdmin, PendingUnset, ""},
		{"lawyer no hint sees everything", RoleLawyer, PendingUnset, ""},
		{"admin pending hint", RoleAdmin, PendingOnly, "ld.is_approved = false"},
		{"admin approved hint", RoleAdmin, ApprovedOnly, "ld.is_approved = true"},
		{"anonymous only approved", RoleNone, PendingUnset, "ld.is_approved = true"},
		{"user only approved", RoleUser, PendingUnset, "ld.is_approved = true"},
		{"user approved hint is redundant", RoleUser, ApprovedOnly, "ld.is_approved = true"},
		{"user pending hint matches nothing", RoleUser, PendingOnly, "FALSE"},
		{"anonymous pending hint matches nothing", RoleNone, PendingOnly, "FALSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApprovalCondition(tt.role, tt.hint, "ld.is_approved"))
		})
	}
}

// A non-elevated caller must never see a row an admin without hints would not
// see, and the hint must only narrow the result set.
func TestVisibilityMonotonicity(t *testing.T) {
	rows := []bool{true, false}

	for _, role := range []Role{RoleNone, RoleUser, RoleLawyer, RoleCollaborator, RoleAdmin} {
		for _, hint := range []PendingHint{PendingUnset, PendingOnly, ApprovedOnly} {
			for _, approved := range rows {
				if Visible(role, hint, approved) {
					assert.True(t, Visible(RoleAdmin, PendingUnset, approved),
						"role %q hint %d sees a row the unfiltered admin cannot", role, hint)
				}
				if !role.Elevated() && Visible(role, hint, approved) {
					assert.True(t, Visible(role, PendingUnset, approved),
						"hint widened visibility for non-elevated role %q", role)
				}
			}
		}
	}
}

func TestPendingHintNarrowing(t *testing.T) {
	for _, role := range []Role{RoleNone, RoleUser, RoleLawyer, RoleCollaborator, RoleAdmin} {
		assert.False(t, Visible(role, PendingOnly, true), "pending hint returned an approved row for %q", role)
		assert.False(t, Visible(role, ApprovedOnly, false), "approved hint returned a pending row for %q", role)
	}

	// A plain user asking for pending rows gets an empty set, never the rows.
	assert.False(t, Visible(RoleUser, PendingOnly, false))
	assert.False(t, Visible(RoleNone, PendingOnly, false))
	assert.True(t, Visible(RoleLawyer, PendingOnly, false))
}

func TestCanApprove(t *testing.T) {
	assert.True(t, CanApprove(RoleAdmin))
	for _, role := range []Role{RoleNone, RoleUser, RoleLawyer, RoleCollaborator} {
		assert.False(t, CanApprove(role), "role %q must not approve", role)
	}
}

func TestCanMutate(t *testing.T) {
	const creator = int64(7)

	assert.True(t, CanMutate(RoleAdmin, 1, creator))
	assert.True(t, CanMutate(RoleLawyer, 1, creator))
	assert.True(t, CanMutate(RoleUser, creator, creator))
	assert.False(t, CanMutate(RoleUser, 8, creator))
	assert.False(t, CanMutate(RoleCollaborator, 8, creator))
	assert.False(t, CanMutate(RoleNone, 0, 0), "anonymous caller can never mutate")
}

func TestApprovedAtCreation(t *testing.T) {
	assert.True(t, ApprovedAtCreation(RoleAdmin))
	assert.False(t, ApprovedAtCreation(RoleLawyer))
	assert.False(t, ApprovedAtCreation(RoleCollaborator))
	assert.False(t, ApprovedAtCreation(RoleUser))
}

func TestParsePendingHint(t *testing.T) {
	assert.Equal(t, PendingOnly, ParsePendingHint("true"))
	assert.Equal(t, ApprovedOnly, ParsePendingHint("false"))
	assert.Equal(t, PendingUnset, ParsePendingHint(""))
	assert.Equal(t, PendingUnset, ParsePendingHint("yes"))
}
