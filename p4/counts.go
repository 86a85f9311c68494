package p4

// Action strings reported by p4 for opened and reconcilable files.
const (
	ActionAdd        = "add"
	ActionEdit       = "edit"
	ActionDelete     = "delete"
	ActionMoveAdd    = "move/add"
	ActionMoveDelete = "move/delete"
)

// OpenCounts tallies files opened in the workspace by action.
type OpenCounts struct {
	Add        uint `json:"add"`
	Edit       uint `json:"edit"`
	Delete     uint `json:"delete"`
	MoveAdd    uint `json:"move_add"`
	MoveDelete uint `json:"move_delete"`
}

// Total returns the number of opened files.
func (c OpenCounts) Total() uint {
	return c.Add + c.Edit + c.Delete + c.MoveAdd + c.MoveDelete
}

// count adds one for a recognized action and reports whether it was one.
func (c *OpenCounts) count(action string) bool {
	switch action {
	case ActionAdd:
		c.Add++
	case ActionEdit:
		c.Edit++
	case ActionDelete:
		c.Delete++
	case ActionMoveAdd:
		c.MoveAdd++
	case ActionMoveDelete:
		c.MoveDelete++
	default:
		return false
	}
	return true
}

// StatusCounts is the result of 'p4 status': files already opened plus files
// changed on disk that still need to be reconciled.
type StatusCounts struct {
	Open          OpenCounts `json:"open"`
	ReconcileAdd  uint       `json:"reconcile_add"`
	ReconcileEdit uint       `json:"reconcile_edit"`
}

// Total returns the number of records that were classified.
func (s StatusCounts) Total() uint {
	return s.Open.Total() + s.ReconcileAdd + s.ReconcileEdit
}

// TallyOpened counts records from 'p4 opened'. Records without a recognized
// action are ignored.
func TallyOpened(records []Record) OpenCounts {
	var counts OpenCounts
	for _, r := range records {
		counts.count(r.Action)
	}
	return counts
}

// TallyStatus counts records from 'p4 status'. An add or edit that belongs to
// a changelist is already opened; without one it is a file to reconcile.
// Deletes and moves are always opened.
func TallyStatus(records []Record) StatusCounts {
	var counts StatusCounts
	for _, r := range records {
		switch r.Action {
		case ActionAdd:
			if r.HasChange() {
				counts.Open.Add++
			} else {
				counts.ReconcileAdd++
			}
		case ActionEdit:
			if r.HasChange() {
				counts.Open.Edit++
			} else {
				counts.ReconcileEdit++
			}
		default:
			counts.Open.count(r.Action)
		}
	}
	return counts
}
