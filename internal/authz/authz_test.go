package authz

import (
	"testing"

	"github.com/atlasfit/gym-backend/internal/models"
)

func TestCan(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		resource Resource
		action   Action
		want     bool
	}{
		{"super admin may do anything", models.RoleSuperAdmin, ResourceBranch, ActionDelete, true},
		{"branch admin manages classes", models.RoleBranchAdmin, ResourceClass, ActionCreate, true},
		{"branch admin cannot delete branches", models.RoleBranchAdmin, ResourceBranch, ActionDelete, false},
		{"branch admin cannot delete users", models.RoleBranchAdmin, ResourceUser, ActionDelete, false},
		{"instructor marks attendance", models.RoleInstructor, ResourceReservation, ActionMark, true},
		{"instructor cannot cancel reservations", models.RoleInstructor, ResourceReservation, ActionManage, false},
		{"instructor cannot create schedules", models.RoleInstructor, ResourceSchedule, ActionCreate, false},
		{"branch admin marks attendance", models.RoleBranchAdmin, ResourceReservation, ActionMark, true},
		{"user books reservations", models.RoleUser, ResourceReservation, ActionCreate, true},
		{"user cancels reservations", models.RoleUser, ResourceReservation, ActionManage, true},
		{"user cannot mark attendance", models.RoleUser, ResourceReservation, ActionMark, false},
		{"user cannot manage memberships", models.RoleUser, ResourceMembership, ActionManage, false},
		{"user cannot refund payments", models.RoleUser, ResourcePayment, ActionManage, false},
		{"unknown role has no access", "GUEST", ResourceClass, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Can(tt.role, tt.resource, tt.action); got != tt.want {
				t.Fatalf("Can(%s, %s, %s) = %v, want %v", tt.role, tt.resource, tt.action, got, tt.want)
			}
		})
	}
}
