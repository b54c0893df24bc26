package board

import (
	"testing"

	"github.com/markjessn/mini-pms/internal/domain/models"
)

// threeColumns lays out TODO / IN_PROGRESS / DONE side by side, each
// 200 wide and 600 tall starting at x=0.
func threeColumns() Layout {
	return Layout{
		{Status: models.TaskTodo, Rect: Rect{Left: 0, Top: 0, Width: 200, Height: 600}},
		{Status: models.TaskInProgress, Rect: Rect{Left: 200, Top: 0, Width: 200, Height: 600}},
		{Status: models.TaskDone, Rect: Rect{Left: 400, Top: 0, Width: 200, Height: 600}},
	}
}

func todoTask() models.Task {
	return models.Task{ID: "t1", Title: "Write release notes", Status: models.TaskTodo}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 100, Top: 50, Width: 200, Height: 300}

	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"interior point", 150, 100, true},
		{"left/top edge is inside", 100, 50, true},
		{"right edge is outside", 300, 100, false},
		{"bottom edge is outside", 150, 350, false},
		{"left of box", 99, 100, false},
		{"above box", 150, 49, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Fatalf("Contains(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestColumnAtClaimsEachPointOnce(t *testing.T) {
	l := threeColumns()

	// The boundary x=200 belongs to IN_PROGRESS only.
	col, ok := l.ColumnAt(200, 10)
	if !ok || col.Status != models.TaskInProgress {
		t.Fatalf("ColumnAt(200,10) = %v %v, want IN_PROGRESS", col.Status, ok)
	}

	if _, ok := l.ColumnAt(900, 10); ok {
		t.Fatal("point outside every column matched a column")
	}
}

func TestGestureLifecycle(t *testing.T) {
	l := threeColumns()

	t.Run("drop on a different column resolves a status change", func(t *testing.T) {
		var g Gesture
		if err := g.Start(todoTask(), l); err != nil {
			t.Fatalf("Start: %v", err)
		}
		g.Move(450, 100) // over DONE
		if g.Phase() != PhaseOver {
			t.Fatalf("phase = %v, want PhaseOver", g.Phase())
		}

		out := g.Release(450, 100)
		if !out.Dropped {
			t.Fatal("release over DONE did not drop")
		}
		if out.NewStatus != models.TaskDone {
			t.Fatalf("NewStatus = %q, want DONE", out.NewStatus)
		}
		if out.Task.ID != "t1" {
			t.Fatalf("Task.ID = %q, want t1", out.Task.ID)
		}
		if g.Phase() != PhaseIdle {
			t.Fatalf("gesture did not return to idle, phase = %v", g.Phase())
		}
	})

	t.Run("drop on the card's own column cancels", func(t *testing.T) {
		var g Gesture
		if err := g.Start(todoTask(), l); err != nil {
			t.Fatalf("Start: %v", err)
		}
		out := g.Release(50, 100) // back onto TODO
		if out.Dropped {
			t.Fatal("same-column release produced a drop")
		}
	})

	t.Run("release outside every column cancels", func(t *testing.T) {
		var g Gesture
		if err := g.Start(todoTask(), l); err != nil {
			t.Fatalf("Start: %v", err)
		}
		g.Move(450, 100)
		out := g.Release(900, 900)
		if out.Dropped {
			t.Fatal("outside release produced a drop")
		}
	})

	t.Run("moving off a column returns to dragging", func(t *testing.T) {
		var g Gesture
		if err := g.Start(todoTask(), l); err != nil {
			t.Fatalf("Start: %v", err)
		}
		g.Move(450, 100)
		g.Move(900, 900)
		if g.Phase() != PhaseDragging {
			t.Fatalf("phase = %v, want PhaseDragging", g.Phase())
		}
		if g.Over() != nil {
			t.Fatal("Over is set after leaving all columns")
		}
	})

	t.Run("second start while a drag is active is rejected", func(t *testing.T) {
		var g Gesture
		if err := g.Start(todoTask(), l); err != nil {
			t.Fatalf("Start: %v", err)
		}
		if err := g.Start(models.Task{ID: "t2", Status: models.TaskTodo}, l); err == nil {
			t.Fatal("overlapping Start succeeded")
		}
	})

	t.Run("cancel abandons without a drop", func(t *testing.T) {
		var g Gesture
		if err := g.Start(todoTask(), l); err != nil {
			t.Fatalf("Start: %v", err)
		}
		g.Cancel()
		if g.Phase() != PhaseIdle {
			t.Fatalf("phase after Cancel = %v, want PhaseIdle", g.Phase())
		}
		// The gesture is reusable after cancel.
		if err := g.Start(todoTask(), l); err != nil {
			t.Fatalf("Start after Cancel: %v", err)
		}
	})
}

func TestResolveDrop(t *testing.T) {
	l := threeColumns()

	out, err := ResolveDrop(todoTask(), l, 250, 100)
	if err != nil {
		t.Fatalf("ResolveDrop: %v", err)
	}
	if !out.Dropped || out.NewStatus != models.TaskInProgress {
		t.Fatalf("got %+v, want drop onto IN_PROGRESS", out)
	}

	out, err = ResolveDrop(todoTask(), l, 50, 100)
	if err != nil {
		t.Fatalf("ResolveDrop: %v", err)
	}
	if out.Dropped {
		t.Fatal("same-column resolve produced a drop")
	}
}

func TestTasksByStatus(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Status: models.TaskTodo},
		{ID: "b", Status: models.TaskDone},
		{ID: "c", Status: models.TaskTodo},
		{ID: "d", Status: "ARCHIVED"}, // unknown status is dropped
	}

	groups := TasksByStatus(tasks)
	if got := len(groups[models.TaskTodo]); got != 2 {
		t.Fatalf("TODO group has %d tasks, want 2", got)
	}
	// Server order is preserved within a column.
	if groups[models.TaskTodo][0].ID != "a" || groups[models.TaskTodo][1].ID != "c" {
		t.Fatalf("TODO order = %v", groups[models.TaskTodo])
	}
	if got := len(groups[models.TaskInProgress]); got != 0 {
		t.Fatalf("IN_PROGRESS group has %d tasks, want 0", got)
	}
	if got := len(groups[models.TaskDone]); got != 1 {
		t.Fatalf("DONE group has %d tasks, want 1", got)
	}
}

func TestColumnsOrder(t *testing.T) {
	cols := Columns()
	want := []string{models.TaskTodo, models.TaskInProgress, models.TaskDone}
	if len(cols) != len(want) {
		t.Fatalf("got %d columns, want %d", len(cols), len(want))
	}
	for i, c := range cols {
		if c.Status != want[i] {
			t.Fatalf("column %d = %s, want %s", i, c.Status, want[i])
		}
	}
}
