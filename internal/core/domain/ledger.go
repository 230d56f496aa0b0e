package domain

// Ledger maps a category id to the candidate chosen in it. There is at most
// one choice per category; voting again replaces it.
type Ledger map[string]string

func (l Ledger) Record(categoryID, candidateID string) {
	l[categoryID] = candidateID
}

func (l Ledger) Choice(categoryID string) (string, bool) {
	id, ok := l[categoryID]
	return id, ok
}

func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
