package snake

// IsWallCollision reports whether head lies outside the grid.
func IsWallCollision(head Cell, g Grid) bool {
	return head.X < 0 || head.X >= g.Width || head.Y < 0 || head.Y >= g.Height
}

// IsSelfCollision reports whether the head shares a cell with any other segment.
func IsSelfCollision(body []Cell) bool {
	if len(body) < 2 {
		return false
	}
	head := body[0]
	for _, seg := range body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// IsFoodCollision reports whether the head is on the food cell.
func IsFoodCollision(head, food Cell) bool {
	return head == food
}
