package reorder

// Controller is the drag state machine for one ordered sequence. Its state
// is ephemeral UI bookkeeping, never part of the sequence itself, and resets
// whenever a drag ends for any reason. The zero value has no active drag and
// is ready to use.
//
// Indices are stored with a +1 offset so the zero value reads as "none".
type Controller struct {
	dragged int
	target  int
}

// NewController returns a Controller with no active drag.
func NewController() *Controller {
	return &Controller{}
}

// Dragged returns the picked-up index, if any.
func (c *Controller) Dragged() (int, bool) {
	return c.dragged - 1, c.dragged > 0
}

// DropTarget returns the currently hovered index, if any.
func (c *Controller) DropTarget() (int, bool) {
	return c.target - 1, c.target > 0
}

// PickUp starts a drag of the element at index i. Negative indices are
// ignored.
func (c *Controller) PickUp(i int) {
	if i < 0 {
		return
	}
	c.dragged = i + 1
	c.target = 0
}

// HoverOver marks index j as the prospective drop position. Hovering the
// dragged element itself, or hovering with no active drag, clears the target.
func (c *Controller) HoverOver(j int) {
	if c.dragged == 0 || j < 0 || j+1 == c.dragged {
		c.target = 0
		return
	}
	c.target = j + 1
}

// Leave clears the drop target but keeps the drag alive.
func (c *Controller) Leave() {
	c.target = 0
}

// Cancel ends the drag without moving anything.
func (c *Controller) Cancel() {
	c.dragged = 0
	c.target = 0
}

// Drop ends the drag at index j and reports the move to perform. ok is false
// when there is no active drag or the element was dropped on itself; either
// way the controller resets.
func (c *Controller) Drop(j int) (from, to int, ok bool) {
	from = c.dragged - 1
	active := c.dragged > 0
	c.dragged = 0
	c.target = 0
	if !active || j < 0 || from == j {
		return 0, 0, false
	}
	return from, j, true
}
