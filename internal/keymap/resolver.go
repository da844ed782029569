package keymap

// Resolver maps key strings to actions, per context.
// Context-specific bindings shadow global ones.
type Resolver struct {
	bindings map[string]map[string]Action // context -> key -> action
	byAction map[Action][]string          // action -> keys (for help)
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		keys, ok := r.bindings[b.Context]
		if !ok {
			keys = make(map[string]Action)
			r.bindings[b.Context] = keys
		}
		for _, key := range b.Keys {
			keys[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	// Deduplicate keys per action
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for key in context, falling back to the
// global context. Unbound keys resolve to the empty action.
func (r *Resolver) Resolve(context, key string) Action {
	if a, ok := r.bindings[context][key]; ok {
		return a
	}
	return r.bindings[ContextGlobal][key]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
