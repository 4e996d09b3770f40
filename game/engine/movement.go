package engine

// Rules holds the policy switches of the step function
type Rules struct {
	// TailIsFree lets the head enter the cell the tail vacates in the same tick
	TailIsFree bool
}

// NextHead returns the cell the head would enter on the next step
func NextHead(w *Worm) Position {
	return w.Head().Add(w.Heading())
}

// CanEnter checks if the head may move onto pos without ending the game
func CanEnter(b *Board, w *Worm, pos Position, rules Rules) bool {
	if !b.InBounds(pos) {
		return false
	}
	switch b.ContentAt(pos) {
	case Barrier:
		return false
	case UsedByWorm:
		return rules.TailIsFree && isVacatingTail(w, pos)
	}
	return true
}

func isVacatingTail(w *Worm, pos Position) bool {
	tail, ok := w.VacatingTail()
	return ok && tail == pos
}

// Step performs one tick: it moves the worm one cell along its heading and
// resolves barriers, self-crossing, food and growth. Terminal outcomes leave
// board and worm untouched.
func Step(b *Board, w *Worm, rules Rules) StepResult {
	from := w.Head()
	candidate := from.Add(w.Heading())

	result := StepResult{
		State: Ongoing,
		From:  from,
		To:    candidate,
	}

	// Bounds before content
	if !b.InBounds(candidate) {
		result.State = OutOfBounds
		return result
	}

	content := b.ContentAt(candidate)
	result.Entered = content

	switch content {
	case Barrier:
		result.State = Crashed
		return result

	case UsedByWorm:
		if !rules.TailIsFree || !isVacatingTail(w, candidate) {
			result.State = Crossing
			return result
		}

	case Food1, Food2, Food3:
		// Grow before committing so the next tick sees the longer body
		bonus, _ := FoodBonus(content)
		w.Grow(bonus)
		b.DecrementFood()
		result.Grew = bonus
	}

	// Commit
	if vacated, ok := w.Advance(candidate); ok {
		if vacated != candidate {
			b.Place(vacated, Free)
		}
		v := vacated
		result.Vacated = &v
	}
	b.Place(candidate, UsedByWorm)

	return result
}
