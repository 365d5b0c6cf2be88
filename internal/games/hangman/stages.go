package hangman

// stages holds the gallows drawings, one per wrong-guess count.
var stages = [MaxWrong + 1]string{
	// Empty gallows
	`
   +---+
   |   |
       |
       |
       |
       |
=========`,
	// Head
	`
   +---+
   |   |
   O   |
       |
       |
       |
=========`,
	// Body
	`
   +---+
   |   |
   O   |
   |   |
       |
       |
=========`,
	// Left arm
	`
   +---+
   |   |
   O   |
  /|   |
       |
       |
=========`,
	// Right arm
	`
   +---+
   |   |
   O   |
  /|\  |
       |
       |
=========`,
	// Left leg
	`
   +---+
   |   |
   O   |
  /|\  |
  /    |
       |
=========`,
	// Right leg: game over
	`
   +---+
   |   |
   O   |
  /|\  |
  / \  |
       |
=========`,
}

// Stage returns the drawing for a wrong-guess count, clamped to [0, MaxWrong].
func Stage(wrong int) string {
	return stages[clamp(wrong, 0, MaxWrong)]
}

// StageCount returns the number of distinct drawings.
func StageCount() int {
	return len(stages)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
