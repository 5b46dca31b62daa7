// Package xp implements the experience ledger: a single counter fed by
// task completions, with a derived level and progress toward the next one.
package xp

// PerTask is the fixed award for completing a task. The same amount is
// deducted when a completion is undone or a completed task is removed.
const PerTask = 10

// PerLevel is the XP span of one level.
const PerLevel = 100

// Level derives the current level from total XP. Level 1 starts at 0 XP.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/PerLevel + 1
}

// Progress returns the percentage toward the next level, clamped to [0,100].
func Progress(xp int) int {
	if xp < 0 {
		return 0
	}
	p := xp % PerLevel
	if p > 100 {
		p = 100
	}
	return p
}

// Award adds amount to the counter.
func Award(xp, amount int) int {
	return xp + amount
}

// Deduct subtracts amount from the counter, floored at zero. The ledger
// is never negative.
func Deduct(xp, amount int) int {
	out := xp - amount
	if out < 0 {
		return 0
	}
	return out
}
