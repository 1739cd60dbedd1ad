package metrics

import "finboard/internal/model"

// UserActivity is one user's slice of the transaction report: how many
// records they own and their signed net (income and contributions add,
// expenses subtract).
type UserActivity struct {
	UserID       string
	UserName     string
	Transactions int
	Net          float64
}

// ActivityByUser computes per-user net contribution over the given
// (typically filtered) transactions. Users without transactions are
// omitted. Output follows the order of the users slice.
func ActivityByUser(txns []model.Transaction, users []model.User) []UserActivity {
	var out []UserActivity
	for _, u := range users {
		var a UserActivity
		for _, t := range txns {
			if t.UserID != u.ID {
				continue
			}
			a.Transactions++
			switch t.Type {
			case model.TypeEntrada, model.TypeAporte:
				a.Net += t.Amount
			case model.TypeSaida:
				a.Net -= t.Amount
			}
		}
		if a.Transactions == 0 {
			continue
		}
		a.UserID = u.ID
		a.UserName = u.Name
		out = append(out, a)
	}
	return out
}

// UserProductivity is one user's slice of the team report.
type UserProductivity struct {
	UserID         string
	UserName       string
	Assigned       int
	Completed      int
	CompletionRate float64 // percent of assigned tasks completed
}

// ProductivityByUser computes per-user task completion over the full task
// collection. Users with no assigned tasks are omitted (their completion
// rate is undefined). Output follows the order of the users slice.
func ProductivityByUser(tasks []model.Task, users []model.User) []UserProductivity {
	var out []UserProductivity
	for _, u := range users {
		var p UserProductivity
		for _, t := range tasks {
			if t.AssignedTo != u.ID {
				continue
			}
			p.Assigned++
			if t.Status == model.TaskCompleted {
				p.Completed++
			}
		}
		if p.Assigned == 0 {
			continue
		}
		p.UserID = u.ID
		p.UserName = u.Name
		p.CompletionRate = float64(p.Completed) / float64(p.Assigned) * 100
		out = append(out, p)
	}
	return out
}
