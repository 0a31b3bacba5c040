package export

import (
	"strconv"
	"strings"
)

// ParseIDs parses a comma separated ID list ("3, 7,x,10" -> [3 7 10]).
// Empty, non-numeric and non-positive entries are dropped.
func ParseIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		if id, ok := parseID(part); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// parseSelection parses multi-select values (checkbox lists). A literal 0
// anywhere means "all" and wins over every other selected ID.
func parseSelection(values []string) (ids []int64, all bool) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "0" {
			return nil, true
		}
		if id, ok := parseID(v); ok {
			ids = append(ids, id)
		}
	}
	return ids, false
}

// parseNames is parseSelection for string-valued selections, where the
// "all" marker is given by sentinel.
func parseNames(values []string, sentinel string) (names []string, all bool) {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == sentinel {
			return nil, true
		}
		if v != "" {
			names = append(names, v)
		}
	}
	return names, false
}

func parseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseUint reads a single non-negative integer field; invalid input is 0.
func parseUint(s string) int64 {
	id, _ := parseID(s)
	return id
}
