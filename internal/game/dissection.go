package game

const ExtractEnergyCost = 10

// StartDissection opens a session on one unit of a corpse item, replacing any
// session already on the table.
func StartDissection(s GameState, corpseItemID string) (GameState, Result) {
	species, ok := SpeciesForCorpse(corpseItemID)
	if !ok {
		return s, invalidTarget("%q is not a corpse.", corpseItemID)
	}

	next := s.Clone()
	next.Dissection = &DissectionSession{
		CorpseItemID:   corpseItemID,
		Species:        species,
		ExtractedParts: []string{},
	}
	return next, informed("Dissection table prepared: %s.", corpseItemID)
}

// Unlocked reports whether every prerequisite of the part is already out.
func (d DissectionSession) Unlocked(part DissectionPart) bool {
	for _, req := range part.Requires {
		if !d.Extracted(req) {
			return false
		}
	}
	return true
}

func ExtractPart(s GameState, partID string) (GameState, Result) {
	if s.Dissection == nil {
		return s, invalidTarget("No dissection in progress.")
	}
	session := *s.Dissection
	part, ok := dissectionPart(session.Species, partID)
	if !ok {
		return s, invalidTarget("A %s has no part %q.", session.Species, partID)
	}
	if s.Energy < ExtractEnergyCost {
		return s, Result{Notice: NoticeError, Message: "Energy too low for surgery.", Err: lacksEnergy(ExtractEnergyCost, s.Energy).Err}
	}
	if session.Extracted(partID) {
		return s, invalidTarget("%s was already extracted.", part.Label)
	}
	if !session.Unlocked(part) {
		return s, invalidTarget("%s is not reachable yet.", part.Label)
	}

	next := s.Clone()
	next.Energy -= ExtractEnergyCost
	next.Inventory[part.OutputItem] += part.OutputCount
	next.Dissection.ExtractedParts = append(next.Dissection.ExtractedParts, partID)
	if next.Dissection.Complete() {
		next.Inventory[session.CorpseItemID] = max(0, next.Inventory[session.CorpseItemID]-1)
		return next, succeeded("Extracted %s. Dissection complete.", part.Label)
	}
	return next, succeeded("Extracted %s.", part.Label)
}

// CompleteDissection clears the table whether or not every part was taken.
func CompleteDissection(s GameState) (GameState, Result) {
	next := s.Clone()
	next.Dissection = nil
	return next, informed("Dissection table cleared.")
}
