package province

// ParseCategory maps a stored category string to its Category. The boolean
// reports whether the value is known.
func ParseCategory(value string) (Category, bool) {
	for c := CategoryCapital; c <= CategoryExtractive; c++ {
		if c.String() == value {
			return c, true
		}
	}
	return CategoryUnspecified, false
}

// ParseStatus maps a stored status string to its Status. The boolean reports
// whether the value is known.
func ParseStatus(value string) (Status, bool) {
	for s := StatusStable; s <= StatusMartialLaw; s++ {
		if s.String() == value {
			return s, true
		}
	}
	return StatusStable, false
}
