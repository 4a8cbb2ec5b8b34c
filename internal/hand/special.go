package hand

import "github.com/lonng/twmj/pkg/tile"

// isThirteenWaist: every orphan at least once, one more orphan as the eyes and
// the last three tiles forming any meld.
func isThirteenWaist(body tile.Stats) bool {
	rest := body
	for _, o := range tile.Orphans {
		if rest[o] == 0 {
			return false
		}
		rest[o]--
	}

	for _, o := range tile.Orphans {
		if rest[o] == 0 {
			continue
		}
		work := rest
		work[o]--
		if isMeld(&work) {
			return true
		}
	}
	return false
}

// isMeld reports whether exactly three tiles remain and they form a group.
func isMeld(ms *tile.Stats) bool {
	if ms.Total() != 3 {
		return false
	}
	t := lowest(ms)
	if ms[t] == 3 {
		return true
	}
	return t.IsNumeral() && t.Rank() <= 7 && ms[t] == 1 && ms[t+1] == 1 && ms[t+2] == 1
}

// isSixteenScattered: sixteen different tiles plus one duplicate, and no two
// numeral tiles of one suit close enough to share a sequence.
func isSixteenScattered(body tile.Stats) bool {
	if body.Distinct() != 16 {
		return false
	}

	doubles := 0
	for t := tile.M1; t <= tile.Bak; t++ {
		switch body[t] {
		case 0, 1:
		case 2:
			doubles++
		default:
			return false
		}
	}
	if doubles != 1 {
		return false
	}

	for _, s := range []tile.Suit{tile.SuitM, tile.SuitT, tile.SuitS} {
		last := -10
		for r := 1; r <= 9; r++ {
			if body[tile.Numeral(s, r)] == 0 {
				continue
			}
			if r-last < 3 {
				return false
			}
			last = r
		}
	}
	return true
}

// isLigu: seven pairs and one triplet. Four of a kind counts as two pairs.
func isLigu(body tile.Stats) bool {
	pairs, triplets := 0, 0
	for t := tile.M1; t <= tile.Bak; t++ {
		switch body[t] {
		case 0:
		case 2:
			pairs++
		case 3:
			triplets++
		case 4:
			pairs += 2
		default:
			return false
		}
	}
	return pairs == 7 && triplets == 1
}
