// Package permission centralizes every capability decision in one place.
//
// The predicates are pure: they take the acting identity (and, where
// ownership matters, the target entity) and return a yes/no answer. The
// mutation services are responsible for turning a "no" into a visible
// PermissionError rather than a silent no-op.
package permission

import "finboard/internal/model"

// CanManageUsers reports whether the actor may invite users and view the
// user administration panel.
func CanManageUsers(actor model.Actor) bool {
	return actor.Role == model.RoleAdmin
}

// CanAddTransactions reports whether the actor may record transactions.
func CanAddTransactions(actor model.Actor) bool {
	return actor.Role == model.RoleAdmin || actor.Role == model.RoleUser
}

// CanViewAllTransactions reports whether the actor may use the per-user
// filter and per-user report views. Non-admins still see every row; this
// gate only controls the owner-scoped views.
func CanViewAllTransactions(actor model.Actor) bool {
	return actor.Role == model.RoleAdmin
}

// CanDeleteTransaction reports whether the actor may delete the given
// transaction: admins may delete any, others only their own.
func CanDeleteTransaction(actor model.Actor, txn model.Transaction) bool {
	return actor.Role == model.RoleAdmin || txn.UserID == actor.ID
}

// CanManageTasks reports whether the actor may create tasks.
func CanManageTasks(actor model.Actor) bool {
	return actor.Role == model.RoleAdmin || actor.Role == model.RoleUser
}

// CanMutateTaskStatus reports whether the actor may change the given
// task's status: admins, the assignee, or the creator.
func CanMutateTaskStatus(actor model.Actor, task model.Task) bool {
	return actor.Role == model.RoleAdmin || task.AssignedTo == actor.ID || task.CreatedBy == actor.ID
}

// CanDeleteTask reports whether the actor may delete the given task:
// admins or the creator.
func CanDeleteTask(actor model.Actor, task model.Task) bool {
	return actor.Role == model.RoleAdmin || task.CreatedBy == actor.ID
}

// CanChangeUserRole reports whether the actor may change user roles at
// all. The self-demotion guard (an admin may not change their own role) is
// enforced by the user service, which knows the target.
func CanChangeUserRole(actor model.Actor) bool {
	return actor.Role == model.RoleAdmin
}
