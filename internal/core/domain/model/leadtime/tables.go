package leadtime

// Default lead times. ME has no rush entry and takes the rush fallback.
var (
	regularTable = mustNewTable(map[string]int{
		"MA": 4,
		"CT": 4,
		"NY": 4,
		"ME": 5,
		"NH": 5,
	}, 6)

	rushTable = mustNewTable(map[string]int{
		"MA": 2,
		"CT": 2,
		"NY": 3,
		"NH": 3,
	}, 4)
)

// RegularTable returns the lead times for regular delivery.
func RegularTable() Table {
	return regularTable
}

// RushTable returns the lead times for rush delivery.
func RushTable() Table {
	return rushTable
}

// TableFor returns RushTable when isRush is set, RegularTable otherwise.
func TableFor(isRush bool) Table {
	if isRush {
		return rushTable
	}
	return regularTable
}

func mustNewTable(days map[string]int, fallback int) Table {
	t, err := NewTable(days, fallback)
	if err != nil {
		panic(err)
	}
	return t
}
