package sonarr

// ApplySeasonSelection recomputes each season's monitored flag from a
// user selection. A nil selection leaves every flag exactly as the
// lookup provided it. A non-nil selection (including empty) overrides
// every flag: a season is monitored iff its number is in the selection,
// except season 0 (specials), which is always forced off regardless of
// the selection's contents.
func ApplySeasonSelection(seasons []Season, selection []int) {
	if selection == nil {
		return
	}
	selected := make(map[int]bool, len(selection))
	for _, n := range selection {
		selected[n] = true
	}
	for i := range seasons {
		if seasons[i].SeasonNumber == 0 {
			seasons[i].Monitored = false
			continue
		}
		seasons[i].Monitored = selected[seasons[i].SeasonNumber]
	}
}
