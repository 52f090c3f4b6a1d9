package typereg

import "fmt"

// IssueKind classifies structural problems found by Verify.
type IssueKind int

const (
	// IssueOrphan marks a type registered with no parents that is not the
	// hierarchy's designated root (the first parentless registration).
	IssueOrphan IssueKind = iota
	// IssueCycle marks a type whose parent links reach back to itself.
	IssueCycle
)

func (k IssueKind) String() string {
	switch k {
	case IssueOrphan:
		return "orphan"
	case IssueCycle:
		return "cycle"
	default:
		return fmt.Sprintf("IssueKind(%d)", int(k))
	}
}

// Issue describes one structural problem in the registry.
type Issue struct {
	Kind   IssueKind
	Handle TypeHandle
	Name   string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %q (handle %d)", i.Kind, i.Name, uint32(i.Handle))
}

// Report is the result of an exhaustive structural check.
type Report struct {
	// Checked is the number of registered types examined.
	Checked int
	// Issues lists every problem found, in handle order.
	Issues []Issue
}

// OK reports whether the check found no issues.
func (r *Report) OK() bool { return len(r.Issues) == 0 }

// Verify walks every registered type and checks the registry's structural
// invariants: the parent graph must be acyclic, and every type except the
// designated root must have at least one parent. Descendant queries are
// only trustworthy when the report is clean.
//
// Verify is an on-demand scan for tooling and tests; the registration path
// does not run it.
func (r *Registry) Verify() *Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep := &Report{Checked: len(r.entries)}
	rootSeen := false
	for i := range r.entries {
		h := TypeHandle(i + 1)
		e := &r.entries[i]
		if len(e.parents) == 0 {
			if rootSeen {
				rep.Issues = append(rep.Issues, Issue{Kind: IssueOrphan, Handle: h, Name: e.name})
			}
			rootSeen = true
			continue
		}
		if r.onCycleLocked(h) {
			rep.Issues = append(rep.Issues, Issue{Kind: IssueCycle, Handle: h, Name: e.name})
		}
	}
	return rep
}

// onCycleLocked reports whether h can reach itself through parent links.
// Callers must hold r.mu.
func (r *Registry) onCycleLocked(h TypeHandle) bool {
	seen := make(map[TypeHandle]bool)
	stack := append([]TypeHandle(nil), r.entries[h-1].parents...)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == h {
			return true
		}
		if seen[cur] || !r.knownLocked(cur) {
			continue
		}
		seen[cur] = true
		stack = append(stack, r.entries[cur-1].parents...)
	}
	return false
}

// Verify checks the default registry. See Registry.Verify.
func Verify() *Report { return defaultRegistry.Verify() }
