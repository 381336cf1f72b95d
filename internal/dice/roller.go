package dice

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// D20 rolls a single d20 with a bonus. Every check in the system is an
	// independent single draw; there is no reroll or advantage mechanic.
	D20(bonus int) (*RollResult, error)
}

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total    int   // Sum of rolls plus bonus
	Rolls    []int // Individual die values
	Bonus    int
	Count    int
	Sides    int
	RawTotal int // Sum of rolls without the bonus
}
