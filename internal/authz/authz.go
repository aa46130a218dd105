// Package authz holds the static role/resource/action permission table. Route
// middleware asks Can before a request reaches a handler; services never check
// roles themselves.
package authz

import "github.com/atlasfit/gym-backend/internal/models"

type Resource string

const (
	ResourceBranch       Resource = "branch"
	ResourceUser         Resource = "user"
	ResourceClass        Resource = "class"
	ResourceSchedule     Resource = "schedule"
	ResourceReservation  Resource = "reservation"
	ResourceSubscription Resource = "subscription"
	ResourceProduct      Resource = "product"
	ResourceMembership   Resource = "membership"
	ResourcePayment      Resource = "payment"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionManage Action = "manage" // lifecycle actions: cancel, extend, refund
	ActionMark   Action = "mark"   // attendance bookkeeping: attended, no-show
)

type permission struct {
	resource Resource
	action   Action
}

// grants lists what each role may do. SUPER_ADMIN is handled in Can and never
// consulted here.
var grants = map[string][]permission{
	models.RoleBranchAdmin: {
		{ResourceBranch, ActionRead},
		{ResourceUser, ActionRead},
		{ResourceUser, ActionCreate},
		{ResourceUser, ActionUpdate},
		{ResourceClass, ActionRead},
		{ResourceClass, ActionCreate},
		{ResourceClass, ActionUpdate},
		{ResourceClass, ActionDelete},
		{ResourceSchedule, ActionRead},
		{ResourceSchedule, ActionCreate},
		{ResourceSchedule, ActionUpdate},
		{ResourceSchedule, ActionDelete},
		{ResourceReservation, ActionRead},
		{ResourceReservation, ActionManage},
		{ResourceReservation, ActionMark},
		{ResourceReservation, ActionDelete},
		{ResourceSubscription, ActionRead},
		{ResourceSubscription, ActionManage},
		{ResourceProduct, ActionRead},
		{ResourceProduct, ActionCreate},
		{ResourceProduct, ActionUpdate},
		{ResourceMembership, ActionRead},
		{ResourceMembership, ActionCreate},
		{ResourceMembership, ActionManage},
		{ResourcePayment, ActionRead},
		{ResourcePayment, ActionCreate},
		{ResourcePayment, ActionManage},
	},
	models.RoleInstructor: {
		{ResourceClass, ActionRead},
		{ResourceSchedule, ActionRead},
		{ResourceReservation, ActionRead},
		{ResourceReservation, ActionMark},
	},
	// USER grants on reservations, subscriptions and payments cover the
	// member's own records only; handlers enforce ownership.
	models.RoleUser: {
		{ResourceBranch, ActionRead},
		{ResourceClass, ActionRead},
		{ResourceSchedule, ActionRead},
		{ResourceReservation, ActionRead},
		{ResourceReservation, ActionCreate},
		{ResourceReservation, ActionManage},
		{ResourceSubscription, ActionRead},
		{ResourceSubscription, ActionCreate},
		{ResourceSubscription, ActionManage},
		{ResourceProduct, ActionRead},
		{ResourceMembership, ActionRead},
		{ResourcePayment, ActionRead},
		{ResourcePayment, ActionCreate},
	},
}

var permissions = buildIndex()

func buildIndex() map[string]map[permission]bool {
	idx := make(map[string]map[permission]bool, len(grants))
	for role, perms := range grants {
		set := make(map[permission]bool, len(perms))
		for _, p := range perms {
			set[p] = true
		}
		idx[role] = set
	}
	return idx
}

// Can reports whether a role may perform an action on a resource.
func Can(role string, resource Resource, action Action) bool {
	if role == models.RoleSuperAdmin {
		return true
	}
	perms, ok := permissions[role]
	if !ok {
		return false
	}
	return perms[permission{resource, action}]
}
