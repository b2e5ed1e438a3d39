package dijkstra

// ReconstructPath walks prev backward from destination and returns the
// vertices from origin to destination.
//
// prev must be the predecessor map of a run whose source was origin.
//
//   - origin == destination yields [origin].
//   - An unreachable destination (no predecessor) yields an empty slice: the
//     walk stops at destination itself, and a one-element result that is not
//     origin means "no path".
//   - A nil prev (origin never computed) behaves like "no predecessors".
//   - The walk is bounded by len(prev)+1 vertices, so a corrupted, cyclic
//     prev also yields an empty slice instead of looping forever. The same
//     holds for any walk that does not end at origin.
//
// The result is never nil.
// Complexity: O(L) for a path of L vertices.
func ReconstructPath(prev map[string]string, origin, destination string) []string {
	if origin == "" || destination == "" {
		return []string{}
	}
	if origin == destination {
		return []string{origin}
	}

	path := make([]string, 0, 8)
	for step := destination; step != ""; step = prev[step] {
		if len(path) > len(prev) {
			return []string{}
		}
		path = append(path, step)
		if step == origin {
			break
		}
	}

	// Reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if path[0] != origin {
		return []string{}
	}

	return path
}
