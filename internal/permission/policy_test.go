package permission_test

import (
	"testing"

	"reviewhub/internal/data/entity"
	"reviewhub/internal/permission"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanManageUsers(t *testing.T) {
	assert.True(t, permission.CanManageUsers(entity.RoleAdmin))
	assert.False(t, permission.CanManageUsers(entity.RoleModerator))
	assert.False(t, permission.CanManageUsers(entity.RoleUser))
	assert.False(t, permission.CanManageUsers(entity.UserRole("")))
}

func TestCanManageCatalog(t *testing.T) {
	assert.True(t, permission.CanManageCatalog(entity.RoleAdmin))
	assert.False(t, permission.CanManageCatalog(entity.RoleModerator))
	assert.False(t, permission.CanManageCatalog(entity.RoleUser))
}

func TestCanModifyContribution(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name  string
		role  entity.UserRole
		actor uuid.UUID
		want  bool
	}{
		{"author with plain role", entity.RoleUser, author, true},
		{"stranger with plain role", entity.RoleUser, stranger, false},
		{"stranger moderator", entity.RoleModerator, stranger, true},
		{"stranger admin", entity.RoleAdmin, stranger, true},
		{"unknown role but author", entity.UserRole("ghost"), author, true},
		{"unknown role stranger", entity.UserRole("ghost"), stranger, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := permission.CanModifyContribution(tt.role, author, tt.actor)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanSetRole(t *testing.T) {
	assert.True(t, permission.CanSetRole(entity.RoleAdmin))
	assert.False(t, permission.CanSetRole(entity.RoleModerator))
	assert.False(t, permission.CanSetRole(entity.RoleUser))
}

func TestIsAtLeast(t *testing.T) {
	assert.True(t, permission.IsAtLeast(entity.RoleAdmin, entity.RoleModerator))
	assert.True(t, permission.IsAtLeast(entity.RoleModerator, entity.RoleModerator))
	assert.False(t, permission.IsAtLeast(entity.RoleUser, entity.RoleModerator))
	assert.False(t, permission.IsAtLeast(entity.UserRole("ghost"), entity.RoleUser))
}
