// Package board models the task board: its fixed columns and the
// drag-and-drop gesture that moves a card between them. The gesture is a
// pure state machine over reported pointer positions and column geometry;
// it decides WHERE a card landed, never talks to the network, and leaves
// issuing the actual status change to the caller.
package board

import (
	"fmt"

	"github.com/markjessn/mini-pms/internal/domain/models"
)

/*──────────────────────────── geometry ────────────────────────────*/

// Rect is a column's bounding box in page coordinates, as reported by the
// browser at drop time.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether the point lies inside the box. Edges on the left
// and top are inside, right and bottom are outside, so adjacent columns
// never both claim a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width &&
		y >= r.Top && y < r.Top+r.Height
}

// Column pairs a task status with its on-screen box.
type Column struct {
	Status string `json:"status"`
	Rect   Rect   `json:"rect"`
}

// Layout is the set of column boxes current at the moment of a drop.
type Layout []Column

// ColumnAt finds the column containing the point, by geometric containment
// alone. The boolean is false when the point is outside every column.
func (l Layout) ColumnAt(x, y float64) (Column, bool) {
	for _, c := range l {
		if c.Rect.Contains(x, y) {
			return c, true
		}
	}
	return Column{}, false
}

/*──────────────────────────── columns ────────────────────────────*/

// ColumnDef is a board column as rendered: status, heading, accent class.
type ColumnDef struct {
	Status string
	Title  string
	Accent string
}

// Columns returns the fixed board columns in display order.
func Columns() []ColumnDef {
	return []ColumnDef{
		{Status: models.TaskTodo, Title: "To Do", Accent: "col-todo"},
		{Status: models.TaskInProgress, Title: "In Progress", Accent: "col-progress"},
		{Status: models.TaskDone, Title: "Done", Accent: "col-done"},
	}
}

// TasksByStatus groups tasks into the fixed columns, preserving the order
// the server returned them in. Tasks with an unrecognized status are
// dropped rather than invented a column for.
func TasksByStatus(tasks []models.Task) map[string][]models.Task {
	groups := make(map[string][]models.Task, len(models.TaskStatuses))
	for _, s := range models.TaskStatuses {
		groups[s] = nil
	}
	for _, t := range tasks {
		if _, ok := groups[t.Status]; ok {
			groups[t.Status] = append(groups[t.Status], t)
		}
	}
	return groups
}

/*──────────────────────────── gesture ────────────────────────────*/

// Phase is where a drag gesture currently stands.
type Phase int

const (
	// PhaseIdle means no card is being dragged.
	PhaseIdle Phase = iota
	// PhaseDragging means a card is in hand but not over any column.
	PhaseDragging
	// PhaseOver means the card is over a column that would accept it.
	PhaseOver
)

// Outcome is the terminal result of a released gesture.
type Outcome struct {
	// Dropped is true only when the release should produce a status change.
	Dropped bool
	// Task is the card that was in hand.
	Task models.Task
	// NewStatus is the target column's status; set only when Dropped.
	NewStatus string
}

// Gesture is a single drag from pick-up to release. At most one card is in
// hand at a time; starting a second drag before the first resolves is a
// caller bug and is rejected.
type Gesture struct {
	phase  Phase
	task   models.Task
	layout Layout
	over   *Column
}

// Phase reports the current phase.
func (g *Gesture) Phase() Phase { return g.phase }

// Over returns the column currently under the card, nil when none.
func (g *Gesture) Over() *Column { return g.over }

// Start picks up a card against the given column layout.
func (g *Gesture) Start(task models.Task, layout Layout) error {
	if g.phase != PhaseIdle {
		return fmt.Errorf("drag already in progress for task %s", g.task.ID)
	}
	g.phase = PhaseDragging
	g.task = task
	g.layout = layout
	g.over = nil
	return nil
}

// Move updates the hover target from a pointer position. Entering a column
// moves the gesture to PhaseOver; leaving all columns moves it back to
// PhaseDragging.
func (g *Gesture) Move(x, y float64) {
	if g.phase == PhaseIdle {
		return
	}
	if col, ok := g.layout.ColumnAt(x, y); ok {
		g.over = &col
		g.phase = PhaseOver
		return
	}
	g.over = nil
	g.phase = PhaseDragging
}

// Release ends the gesture at the given pointer position and resolves it:
// a drop lands only when the point is inside a column whose status differs
// from the card's current one. Releasing outside every column, or over the
// card's own column, cancels. The gesture returns to idle either way.
func (g *Gesture) Release(x, y float64) Outcome {
	if g.phase == PhaseIdle {
		return Outcome{}
	}

	out := Outcome{Task: g.task}
	if col, ok := g.layout.ColumnAt(x, y); ok && col.Status != g.task.Status {
		out.Dropped = true
		out.NewStatus = col.Status
	}

	g.phase = PhaseIdle
	g.task = models.Task{}
	g.layout = nil
	g.over = nil
	return out
}

// Cancel abandons the gesture without resolving a drop (Escape, blur).
func (g *Gesture) Cancel() {
	g.phase = PhaseIdle
	g.task = models.Task{}
	g.layout = nil
	g.over = nil
}

// ResolveDrop runs a complete pick-up / release cycle in one call. This is
// the shape the move endpoint uses: the browser reports the dragged task,
// the column boxes, and the release point, and the server decides the drop.
func ResolveDrop(task models.Task, layout Layout, x, y float64) (Outcome, error) {
	var g Gesture
	if err := g.Start(task, layout); err != nil {
		return Outcome{}, err
	}
	g.Move(x, y)
	return g.Release(x, y), nil
}
