package components

// Name stores the display name for entities
type Name string

func (n Name) String() string {
	return string(n)
}
