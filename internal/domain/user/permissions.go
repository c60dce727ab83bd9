// internal/domain/user/permissions.go
package user

// Resource names a permission-guarded noun (e.g. "products", "audit_log")
type Resource string

// Action names a permission-guarded verb (e.g. "read", "delete")
type Action string

// Wildcard values match any resource or any action. All wildcard handling
// lives in the match helpers below; nothing else compares against these.
const (
	AnyResource Resource = "*"
	AnyAction   Action   = "*"
)

// Known resources
const (
	ResourceProducts         Resource = "products"
	ResourceInventory        Resource = "inventory"
	ResourceSupplyChain      Resource = "supply_chain"
	ResourceReports          Resource = "reports"
	ResourceWarehouseReports Resource = "warehouse_reports"
	ResourceUsers            Resource = "users"
	ResourceAuditLog         Resource = "audit_log"
	ResourceCustomers        Resource = "customers"
	ResourceForecasts        Resource = "forecasts"
)

// Known actions
const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
)

// Grant allows a set of actions on one resource
type Grant struct {
	Resource Resource
	Actions  []Action
}

func (g Grant) matches(resource Resource, action Action) bool {
	if g.Resource != AnyResource && g.Resource != resource {
		return false
	}
	for _, a := range g.Actions {
		if a == AnyAction || a == action {
			return true
		}
	}
	return false
}

// basePermissions is the default grant table per role.
var basePermissions = map[Role][]Grant{
	RoleAdmin: {
		{Resource: AnyResource, Actions: []Action{AnyAction}},
	},
	RoleWarehouseManager: {
		{Resource: ResourceProducts, Actions: []Action{AnyAction}},
		{Resource: ResourceInventory, Actions: []Action{AnyAction}},
		{Resource: ResourceSupplyChain, Actions: []Action{AnyAction}},
		{Resource: ResourceWarehouseReports, Actions: []Action{ActionRead}},
		{Resource: ResourceReports, Actions: []Action{ActionRead, ActionExport}},
		{Resource: ResourceCustomers, Actions: []Action{AnyAction}},
		{Resource: ResourceForecasts, Actions: []Action{ActionRead}},
	},
	RoleWarehouseStaff: {
		{Resource: ResourceProducts, Actions: []Action{ActionRead}},
		{Resource: ResourceInventory, Actions: []Action{ActionRead, ActionUpdate}},
		{Resource: ResourceSupplyChain, Actions: []Action{ActionRead, ActionUpdate}},
		{Resource: ResourceWarehouseReports, Actions: []Action{ActionRead}},
	},
	RoleAccountant: {
		{Resource: ResourceProducts, Actions: []Action{ActionRead}},
		{Resource: ResourceInventory, Actions: []Action{ActionRead}},
		{Resource: ResourceSupplyChain, Actions: []Action{ActionRead}},
		{Resource: ResourceReports, Actions: []Action{ActionRead, ActionExport}},
		{Resource: ResourceCustomers, Actions: []Action{ActionRead}},
		{Resource: ResourceForecasts, Actions: []Action{ActionRead}},
	},
}

// extendedPermissions overrides basePermissions per-role (not per-entry).
// It exists only for the roles that gained audit-log and user-management
// access; every other role falls back to the base table.
var extendedPermissions = map[Role][]Grant{
	RoleAdmin: {
		{Resource: AnyResource, Actions: []Action{AnyAction}},
	},
	RoleWarehouseManager: {
		{Resource: ResourceProducts, Actions: []Action{AnyAction}},
		{Resource: ResourceInventory, Actions: []Action{AnyAction}},
		{Resource: ResourceSupplyChain, Actions: []Action{AnyAction}},
		{Resource: ResourceWarehouseReports, Actions: []Action{ActionRead}},
		{Resource: ResourceReports, Actions: []Action{ActionRead, ActionExport}},
		{Resource: ResourceCustomers, Actions: []Action{AnyAction}},
		{Resource: ResourceForecasts, Actions: []Action{ActionRead}},
		{Resource: ResourceAuditLog, Actions: []Action{ActionRead}},
		{Resource: ResourceUsers, Actions: []Action{ActionRead}},
	},
}

// Evaluator answers (role, resource, action) permission checks against the
// static role tables. Evaluation is a deterministic linear scan with no side
// effects.
type Evaluator struct {
	base     map[Role][]Grant
	extended map[Role][]Grant
}

// NewEvaluator creates an evaluator over the built-in role tables
func NewEvaluator() *Evaluator {
	return &Evaluator{
		base:     basePermissions,
		extended: extendedPermissions,
	}
}

// HasPermission reports whether the role may perform the action on the
// resource. Admin always may; unknown roles never may (fail closed).
func (e *Evaluator) HasPermission(role Role, resource Resource, action Action) bool {
	if role == RoleAdmin {
		return true
	}

	grants, ok := e.extended[role]
	if !ok {
		grants = e.base[role]
	}

	for _, g := range grants {
		if g.matches(resource, action) {
			return true
		}
	}
	return false
}
