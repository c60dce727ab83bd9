// internal/domain/user/permissions_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermissionAdminAlwaysAllowed(t *testing.T) {
	e := NewEvaluator()

	assert.True(t, e.HasPermission(RoleAdmin, ResourceUsers, ActionDelete))
	assert.True(t, e.HasPermission(RoleAdmin, ResourceAuditLog, ActionRead))
	assert.True(t, e.HasPermission(RoleAdmin, Resource("nonexistent"), Action("anything")))
}

func TestHasPermissionDeniesByDefault(t *testing.T) {
	e := NewEvaluator()

	// Accountant has no grant for users at all
	assert.False(t, e.HasPermission(RoleAccountant, ResourceUsers, ActionRead))
	assert.False(t, e.HasPermission(RoleAccountant, ResourceUsers, ActionDelete))

	// Unknown roles fail closed
	assert.False(t, e.HasPermission(Role("intern"), ResourceProducts, ActionRead))
	assert.False(t, e.HasPermission(Role(""), ResourceProducts, ActionRead))
}

func TestHasPermissionExtendedTableOverrides(t *testing.T) {
	e := NewEvaluator()

	// Warehouse manager gains audit-log and user reads via the extended table
	assert.True(t, e.HasPermission(RoleWarehouseManager, ResourceAuditLog, ActionRead))
	assert.True(t, e.HasPermission(RoleWarehouseManager, ResourceUsers, ActionRead))

	// The override grants read only, not management
	assert.False(t, e.HasPermission(RoleWarehouseManager, ResourceUsers, ActionCreate))
	assert.False(t, e.HasPermission(RoleWarehouseManager, ResourceUsers, ActionDelete))
	assert.False(t, e.HasPermission(RoleWarehouseManager, ResourceAuditLog, ActionDelete))
}

func TestHasPermissionBaseTableFallback(t *testing.T) {
	e := NewEvaluator()

	// Staff has no extended entry, so the base table applies
	assert.True(t, e.HasPermission(RoleWarehouseStaff, ResourceInventory, ActionRead))
	assert.True(t, e.HasPermission(RoleWarehouseStaff, ResourceInventory, ActionUpdate))
	assert.True(t, e.HasPermission(RoleWarehouseStaff, ResourceSupplyChain, ActionUpdate))
	assert.False(t, e.HasPermission(RoleWarehouseStaff, ResourceProducts, ActionCreate))
	assert.False(t, e.HasPermission(RoleWarehouseStaff, ResourceAuditLog, ActionRead))
	assert.False(t, e.HasPermission(RoleWarehouseStaff, ResourceForecasts, ActionRead))
}

func TestHasPermissionWildcardActions(t *testing.T) {
	e := NewEvaluator()

	// Manager's products grant carries the wildcard action
	assert.True(t, e.HasPermission(RoleWarehouseManager, ResourceProducts, ActionCreate))
	assert.True(t, e.HasPermission(RoleWarehouseManager, ResourceProducts, ActionDelete))
	assert.True(t, e.HasPermission(RoleWarehouseManager, ResourceProducts, ActionExport))
}

func TestGrantMatches(t *testing.T) {
	read := Grant{Resource: ResourceReports, Actions: []Action{ActionRead, ActionExport}}
	assert.True(t, read.matches(ResourceReports, ActionRead))
	assert.True(t, read.matches(ResourceReports, ActionExport))
	assert.False(t, read.matches(ResourceReports, ActionDelete))
	assert.False(t, read.matches(ResourceUsers, ActionRead))

	wildcard := Grant{Resource: AnyResource, Actions: []Action{AnyAction}}
	assert.True(t, wildcard.matches(ResourceUsers, ActionDelete))
	assert.True(t, wildcard.matches(Resource("anything"), Action("whatever")))
}
