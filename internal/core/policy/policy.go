// Package policy holds the static access-control table mapping (entity, verb)
// operations to the roles allowed to perform them. It is ordinary data,
// decoupled from routing; the RBAC middleware evaluates it after
// authentication has already succeeded.
package policy

import "github.com/inventoryapi/inventory-system/internal/core/domain"

// Operation identifies a protected action at (entity, verb) granularity.
type Operation string

const (
	CategoryRead   Operation = "category:read"
	CategoryCreate Operation = "category:create"
	CategoryUpdate Operation = "category:update"
	CategoryDelete Operation = "category:delete"

	ProductRead   Operation = "product:read"
	ProductCreate Operation = "product:create"
	ProductUpdate Operation = "product:update"
	ProductDelete Operation = "product:delete"
)

// table is the whole policy. Reads are open to every role, product writes
// need Operator, and category mutations plus product deletion need
// Administrator.
var table = map[Operation][]string{
	CategoryRead:   {domain.RoleViewer, domain.RoleOperator, domain.RoleAdministrator},
	CategoryCreate: {domain.RoleAdministrator},
	CategoryUpdate: {domain.RoleAdministrator},
	CategoryDelete: {domain.RoleAdministrator},

	ProductRead:   {domain.RoleViewer, domain.RoleOperator, domain.RoleAdministrator},
	ProductCreate: {domain.RoleOperator, domain.RoleAdministrator},
	ProductUpdate: {domain.RoleOperator, domain.RoleAdministrator},
	ProductDelete: {domain.RoleAdministrator},
}

// Allowed reports whether role may perform op. Unknown operations and unknown
// roles are both denied.
func Allowed(role string, op Operation) bool {
	for _, allowed := range table[op] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Roles returns the set of roles permitted for op.
func Roles(op Operation) []string {
	return table[op]
}
