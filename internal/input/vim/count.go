package vim

import "math"

// CountState tracks count prefix accumulation during resolution.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates if a count is being accumulated.
	Active bool
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds a digit to the count.
// Returns true if the digit was accepted.
//
// Special case: '0' with no count pending is not a count digit, it is
// the line-start motion; callers fall through to motion lookup when
// this returns false.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true

	// Guard against integer overflow.
	if c.Value > (math.MaxInt-digit)/10 {
		c.Value = math.MaxInt / 10
		return true
	}

	c.Value = c.Value*10 + digit
	return true
}

// Get returns the effective count (1 if no count was specified).
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// Take returns the effective count and resets the state.
func (c *CountState) Take() int {
	count := c.Get()
	c.Reset()
	return count
}

// IsCountDigit returns true if the character is a decimal digit.
func IsCountDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
