package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role string
		want Permissions
	}{
		{
			role: RoleAdmin,
			want: Permissions{CanCreate: true, CanEdit: true, CanDelete: true, CanView: true},
		},
		{
			role: RoleDispatcher,
			want: Permissions{CanCreate: true, CanEdit: true, CanDelete: false, CanView: true},
		},
		{
			role: RoleViewer,
			want: Permissions{CanCreate: false, CanEdit: false, CanDelete: false, CanView: true},
		},
		{
			// Неизвестная роль получает права наблюдателя
			role: "supervisor",
			want: Permissions{CanCreate: false, CanEdit: false, CanDelete: false, CanView: true},
		},
		{
			role: "",
			want: Permissions{CanCreate: false, CanEdit: false, CanDelete: false, CanView: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, RolePermissions(tt.role))
		})
	}
}
