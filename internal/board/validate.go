package board

// Report is the result of a validity check over a lane mapping.
type Report struct {
	Valid        bool
	DuplicateIDs []int64
}

// Check verifies the global uniqueness invariant: no item id appears in more
// than one lane (or twice in the same lane).
func Check(lanes map[Lane][]Item) Report {
	seen := make(map[int64]bool)
	var dups []int64
	dupSeen := make(map[int64]bool)
	for _, l := range Lanes() {
		for _, it := range lanes[l] {
			if seen[it.ID] {
				if !dupSeen[it.ID] {
					dups = append(dups, it.ID)
					dupSeen[it.ID] = true
				}
				continue
			}
			seen[it.ID] = true
		}
	}
	return Report{Valid: len(dups) == 0, DuplicateIDs: dups}
}

// Repair keeps the first occurrence of each duplicated id, scanning lanes in
// fixed order (todo, in progress, done), and removes the rest. Given the
// store's own construction guarantees this converges in a single pass; it is
// a defensive second line, not a primary mechanism.
func Repair(lanes map[Lane][]Item) map[Lane][]Item {
	seen := make(map[int64]bool)
	out := make(map[Lane][]Item, len(lanes))
	for _, l := range Lanes() {
		var kept []Item
		for _, it := range lanes[l] {
			if seen[it.ID] {
				continue
			}
			seen[it.ID] = true
			kept = append(kept, it)
		}
		out[l] = kept
	}
	return out
}
