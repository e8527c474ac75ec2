package upstream

// The upstream platform's category and writing-task ids are a closed set.
// These tables are authoritative; unknown ids resolve to no name.

var categoryNames = map[int]string{
	4:  "Anleiten",
	5:  "Erklären",
	6:  "Fragen",
	7:  "Informieren",
	8:  "Überzeugen",
	9:  "Unterhalten",
	14: "Berichten",
}

var taskNames = map[int]string{
	10: "Schreibaufgabe: Fiktionaler Dialog",
	11: "Schreibaufgabe: Wegbeschreibung",
	12: "Schreibaufgabe: Schaltplan",
	13: "Schreibaufgabe: Reisebericht",
}

// CategoryName resolves a category id to its display name.
func CategoryName(id int) (string, bool) {
	name, ok := categoryNames[id]
	return name, ok
}

// TaskName resolves a writing-task id to its display name.
func TaskName(id int) (string, bool) {
	name, ok := taskNames[id]
	return name, ok
}
