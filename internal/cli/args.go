package cli

import "strings"

// normalizeNodeIDs trims whitespace around comma-separated IDs and drops
// empty entries, so "--node_ids '12, 15,'" yields [12 15].
func normalizeNodeIDs(raw []string) []string {
	ids := make([]string, 0, len(raw))
	for _, r := range raw {
		for _, id := range strings.Split(r, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
