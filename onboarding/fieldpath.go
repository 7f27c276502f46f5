package onboarding

import "strings"

// Get resolves a dot-path against a nested form state. Any absent or
// non-object segment yields nil, never a panic.
func Get(root map[string]any, path string) any {
	cur := any(root)
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[seg]
		if !ok {
			return nil
		}
	}
	return cur
}

// Set writes a value at a dot-path and returns the new root. Intermediate
// objects are created as needed. Copy-on-write along the traversed path only;
// sibling subtrees are shared, not deep-copied.
func Set(root map[string]any, path string, value any) map[string]any {
	return setSegments(root, strings.Split(path, "."), value)
}

func setSegments(node map[string]any, segs []string, value any) map[string]any {
	out := make(map[string]any, len(node)+1)
	for k, v := range node {
		out[k] = v
	}

	key := segs[0]
	if len(segs) == 1 {
		out[key] = value
		return out
	}

	child, _ := out[key].(map[string]any)
	if child == nil {
		child = map[string]any{}
	}
	out[key] = setSegments(child, segs[1:], value)
	return out
}
