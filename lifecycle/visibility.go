package lifecycle

// Role is the global role of an authenticated caller. RoleNone stands for an
// anonymous request.
type Role string

const (
	RoleNone         Role = ""
	RoleUser         Role = "user"
	RoleLawyer       Role = "lawyer"
	RoleAdmin        Role = "admin"
	RoleCollaborator Role = "collaborator"
)

var validRoles = map[Role]bool{
	RoleUser:         true,
	RoleLawyer:       true,
	RoleAdmin:        true,
	RoleCollaborator: true,
}

// ParseRole maps a stored role string to a Role. Unknown values are treated as
// anonymous rather than granting any privilege.
func ParseRole(s string) Role {
	r := Role(s)
	if !validRoles[r] {
		return RoleNone
	}
	return r
}

func (r Role) Valid() bool {
	return validRoles[r]
}

// Elevated reports whether the role sees content regardless of approval state.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleLawyer || r == RoleCollaborator
}

// PendingHint is the caller-supplied isPending query hint.
type PendingHint int

const (
	PendingUnset PendingHint = iota
	PendingOnly              // isPending=true: only unapproved rows
	ApprovedOnly             // isPending=false: only approved rows
)

// ParsePendingHint parses the isPending query parameter. Anything other than
// the literal strings "true" and "false" leaves the hint unset.
func ParsePendingHint(s string) PendingHint {
	switch s {
	case "true":
		return PendingOnly
	case "false":
		return ApprovedOnly
	}
	return PendingUnset
}

// ApprovalCondition builds the SQL predicate controlling which rows a listing
// returns, per the approval/visibility decision table. column is the qualified
// is_approved column. An empty return means no approval filtering.
//
// The hint is not an authorization check: for callers without an elevated role
// it may only narrow the approved set, so a plain user asking for pending rows
// matches nothing instead of seeing other users' unapproved content.
func ApprovalCondition(role Role, hint PendingHint, column string) string {
	if role.Elevated() {
		switch hint {
		case PendingOnly:
			return column + " = false"
		case ApprovedOnly:
			return column + " = true"
		}
		return ""
	}

	if hint == PendingOnly {
		return "FALSE"
	}
	return column + " = true"
}

// Visible is the row-level mirror of ApprovalCondition.
func Visible(role Role, hint PendingHint, approved bool) bool {
	if role.Elevated() {
		switch hint {
		case PendingOnly:
			return !approved
		case ApprovedOnly:
			return approved
		}
		return true
	}

	if hint == PendingOnly {
		return false
	}
	return approved
}

// CanApprove reports whether the caller may flip is_approved on any content.
func CanApprove(role Role) bool {
	return role == RoleAdmin
}

// CanMutate reports whether the caller may update or delete a content row
// created by creatorID.
func CanMutate(role Role, callerID, creatorID int64) bool {
	if role == RoleAdmin || role == RoleLawyer {
		return true
	}
	return callerID != 0 && callerID == creatorID
}

// ApprovedAtCreation returns the initial approval flag for content created by
// the given role.
func ApprovedAtCreation(role Role) bool {
	return role == RoleAdmin
}
