package engine

// Collision summarizes what ResolveCollisions did in one tick.
type Collision struct {
	Hits  int  // Lives lost without ending the run
	Fatal bool // The last life was lost
}

// ResolveCollisions tests the body against every live obstacle in slot
// order. A colliding obstacle is always freed and never scores. With more
// than one life left the body loses a life and the run continues;
// otherwise lives drop to zero and no further obstacles are examined.
func ResolveCollisions(body *Body, pool *Pool) Collision {
	var c Collision
	box := body.Rect()

	for slot := 0; slot < Capacity; slot++ {
		if !pool.Active(slot) {
			continue
		}
		if !box.Intersects(pool.Get(slot).Rect()) {
			continue
		}

		pool.Release(slot)
		if body.Lives > 1 {
			body.Lives--
			c.Hits++
			continue
		}
		body.Lives = 0
		c.Fatal = true
		return c
	}
	return c
}
