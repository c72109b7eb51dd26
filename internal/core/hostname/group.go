package hostname

import "sort"

// Group is a set of hostnames sharing the same code prefix.
type Group struct {
	Codes     string
	Hostnames []string
}

// GroupByCodes groups hostnames by their parsed code prefix. Groups are
// ordered by prefix and hostnames sorted lexicographically inside each group.
// Hostnames that do not parse fall into a group with empty Codes, which
// sorts first.
func GroupByCodes(hostnames []string) []Group {
	byCodes := make(map[string][]string)
	for _, h := range hostnames {
		codes := CodePrefix(h)
		byCodes[codes] = append(byCodes[codes], h)
	}

	groups := make([]Group, 0, len(byCodes))
	for codes, hs := range byCodes {
		sort.Strings(hs)
		groups = append(groups, Group{Codes: codes, Hostnames: hs})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Codes < groups[j].Codes
	})
	return groups
}
