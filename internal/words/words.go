package words

// WordEntry is a dictionary entry: a headword and the synonyms accepted
// as correct answers for it.
type WordEntry struct {
	// ID is the opaque store identifier for this entry.
	ID string

	// Headword is the word shown as the question prompt.
	Headword string

	// Synonyms holds the accepted answers. An entry with no synonyms
	// cannot be quizzed and must be filtered out with Usable.
	Synonyms []string

	// Level is the difficulty tier this entry belongs to.
	Level int
}

// Usable reports whether the entry can serve as a question source.
func (e WordEntry) Usable() bool {
	return e.Headword != "" && len(e.Synonyms) > 0
}

// FilterUsable returns the entries that can serve as question sources.
// The vocabulary handed to the quiz generator must pass through this.
func FilterUsable(entries []WordEntry) []WordEntry {
	out := make([]WordEntry, 0, len(entries))
	for _, e := range entries {
		if e.Usable() {
			out = append(out, e)
		}
	}
	return out
}
