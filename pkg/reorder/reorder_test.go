package reorder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/reorder"
)

func TestMove_DropTargetAsymmetry(t *testing.T) {
	seq := []string{"A", "B", "C", "D"}

	// Moving downward lands after the element originally at the target.
	got := reorder.Move(seq, 0, 2)
	if diff := cmp.Diff([]string{"B", "C", "A", "D"}, got); diff != "" {
		t.Fatalf("downward move (-want +got):\n%s", diff)
	}

	// Moving upward lands before the element originally at the target.
	got = reorder.Move(seq, 3, 1)
	if diff := cmp.Diff([]string{"A", "D", "B", "C"}, got); diff != "" {
		t.Fatalf("upward move (-want +got):\n%s", diff)
	}
}

func TestMove_SelfAndOutOfRangeAreNoops(t *testing.T) {
	seq := []string{"A", "B"}
	if diff := cmp.Diff(seq, reorder.Move(seq, 1, 1)); diff != "" {
		t.Fatalf("self move (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seq, reorder.Move(seq, 5, 0)); diff != "" {
		t.Fatalf("out of range (-want +got):\n%s", diff)
	}
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	seq := []string{"A", "B", "C"}
	_ = reorder.Move(seq, 0, 2)
	if diff := cmp.Diff([]string{"A", "B", "C"}, seq); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestController_DropReportsMove(t *testing.T) {
	c := reorder.NewController()
	c.PickUp(2)
	c.HoverOver(0)

	from, to, ok := c.Drop(0)
	if !ok || from != 2 || to != 0 {
		t.Fatalf("expected move 2->0, got (%d,%d,%t)", from, to, ok)
	}
	if _, active := c.Dragged(); active {
		t.Fatalf("drop must reset the drag state")
	}
	if _, hovering := c.DropTarget(); hovering {
		t.Fatalf("drop must reset the drop target")
	}
}

func TestController_DropOnSelfAborts(t *testing.T) {
	c := reorder.NewController()
	c.PickUp(1)
	if _, _, ok := c.Drop(1); ok {
		t.Fatalf("dropping on the dragged index must abort")
	}
	if _, active := c.Dragged(); active {
		t.Fatalf("aborted drop must still reset the drag state")
	}
}

func TestController_DropWithoutDragAborts(t *testing.T) {
	c := reorder.NewController()
	if _, _, ok := c.Drop(0); ok {
		t.Fatalf("drop without an active drag must abort")
	}
}

func TestController_HoverSemantics(t *testing.T) {
	c := reorder.NewController()

	// Hovering with no active drag clears the target.
	c.HoverOver(1)
	if _, ok := c.DropTarget(); ok {
		t.Fatalf("hover without drag must not set a target")
	}

	c.PickUp(0)
	c.HoverOver(2)
	if target, ok := c.DropTarget(); !ok || target != 2 {
		t.Fatalf("expected target 2, got (%d,%t)", target, ok)
	}

	// Hovering the dragged element clears the target again.
	c.HoverOver(0)
	if _, ok := c.DropTarget(); ok {
		t.Fatalf("hovering the dragged element must clear the target")
	}

	c.HoverOver(1)
	c.Leave()
	if _, ok := c.DropTarget(); ok {
		t.Fatalf("leave must clear the target")
	}
	if dragged, ok := c.Dragged(); !ok || dragged != 0 {
		t.Fatalf("leave must keep the drag alive, got (%d,%t)", dragged, ok)
	}
}

func TestController_CancelResetsEverything(t *testing.T) {
	c := reorder.NewController()
	c.PickUp(1)
	c.HoverOver(3)
	c.Cancel()
	if _, ok := c.Dragged(); ok {
		t.Fatalf("cancel must clear the dragged index")
	}
	if _, ok := c.DropTarget(); ok {
		t.Fatalf("cancel must clear the drop target")
	}
}

func TestController_ZeroValueUsable(t *testing.T) {
	var c reorder.Controller
	if _, ok := c.Dragged(); ok {
		t.Fatalf("zero value must report no active drag")
	}
	c.PickUp(0)
	if dragged, ok := c.Dragged(); !ok || dragged != 0 {
		t.Fatalf("expected index 0 dragged, got (%d,%t)", dragged, ok)
	}
}
