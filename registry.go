package dyncast

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry is a process-wide table of registered types and declared
// hierarchies.
//
// Registration is optional for the core downcast operations - Is, As and
// friends work on any interface value. The registry exists for the
// declaration surface: display names for diagnostics, hierarchy
// declarations with their qualifier sets, and member universes. All methods
// are safe for concurrent use; reads run concurrently under an RWMutex.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]TypeID
	byID   map[TypeID]string
	hiers  map[string]*hierarchyRecord
}

// hierarchyRecord is the registry's view of one declared hierarchy.
// Guarded by the owning Registry's mutex.
type hierarchyRecord struct {
	name    string
	iface   reflect.Type
	quals   Qualifier
	members map[TypeID]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]TypeID),
		byID:   make(map[TypeID]string),
		hiers:  make(map[string]*hierarchyRecord),
	}
}

// DefaultRegistry is the registry used by the package-level registration
// and declaration functions.
var DefaultRegistry = NewRegistry()

// RegisterType registers T in the default registry under a display name.
func RegisterType[T any](name string) error {
	return RegisterTypeIn[T](DefaultRegistry, name)
}

// RegisterTypeIn registers T in r under a display name.
//
// Each type registers at most once and each name maps to at most one type;
// violations return a *RegistryError with ErrCodeDuplicateType or
// ErrCodeDuplicateName.
func RegisterTypeIn[T any](r *Registry, name string) error {
	id := TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[id]; ok {
		return &RegistryError{
			Code:    ErrCodeDuplicateType,
			Message: fmt.Sprintf("type already registered as %q", existing),
			Type:    id.Name(),
		}
	}
	if existing, ok := r.byName[name]; ok {
		return &RegistryError{
			Code:    ErrCodeDuplicateName,
			Message: fmt.Sprintf("name %q already registered for %s", name, existing.Name()),
			Type:    id.Name(),
		}
	}

	r.byName[name] = id
	r.byID[id] = name
	return nil
}

// LookupType returns the TypeID registered under name.
func (r *Registry) LookupType(name string) (TypeID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	return id, ok
}

// RegisteredName returns the display name id was registered under.
func (r *Registry) RegisteredName(id TypeID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.byID[id]
	return name, ok
}

// TypeEntry describes one registered type in a snapshot.
type TypeEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// HierarchyEntry describes one declared hierarchy in a snapshot.
type HierarchyEntry struct {
	Name       string   `json:"name"`
	Interface  string   `json:"interface"`
	Qualifiers string   `json:"qualifiers"`
	Members    []string `json:"members"`
}

// RegistrySnapshot is a point-in-time, deterministic listing of a
// registry's contents, for diagnostics and golden tests.
type RegistrySnapshot struct {
	Types       []TypeEntry      `json:"types"`
	Hierarchies []HierarchyEntry `json:"hierarchies"`
}

// Snapshot returns a deterministic listing of r's contents. Types are
// sorted by display name, hierarchies by hierarchy name, members by type
// name. Type strings in the snapshot are diagnostic only and not stable
// across compiler versions.
func (r *Registry) Snapshot() RegistrySnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := RegistrySnapshot{
		Types:       make([]TypeEntry, 0, len(r.byName)),
		Hierarchies: make([]HierarchyEntry, 0, len(r.hiers)),
	}

	for name, id := range r.byName {
		snap.Types = append(snap.Types, TypeEntry{Name: name, Type: id.Name()})
	}
	sort.Slice(snap.Types, func(i, j int) bool {
		return snap.Types[i].Name < snap.Types[j].Name
	})

	for name, rec := range r.hiers {
		members := make([]string, 0, len(rec.members))
		for id := range rec.members {
			members = append(members, id.Name())
		}
		sort.Strings(members)
		snap.Hierarchies = append(snap.Hierarchies, HierarchyEntry{
			Name:       name,
			Interface:  rec.iface.String(),
			Qualifiers: rec.quals.String(),
			Members:    members,
		})
	}
	sort.Slice(snap.Hierarchies, func(i, j int) bool {
		return snap.Hierarchies[i].Name < snap.Hierarchies[j].Name
	})

	return snap
}

// declareHierarchy records a new hierarchy. iface must be an interface
// type (verified by the caller, which knows the offending type parameter).
func (r *Registry) declareHierarchy(name string, iface reflect.Type, quals Qualifier) (*hierarchyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hiers[name]; ok {
		return nil, &RegistryError{
			Code:      ErrCodeDuplicateHierarchy,
			Message:   "hierarchy name already declared",
			Hierarchy: name,
		}
	}

	rec := &hierarchyRecord{
		name:    name,
		iface:   iface,
		quals:   quals,
		members: make(map[TypeID]struct{}),
	}
	r.hiers[name] = rec
	return rec, nil
}

// addMember records id as a member of rec after the caller verified the
// implements relation.
func (r *Registry) addMember(rec *hierarchyRecord, id TypeID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.members[id] = struct{}{}
}

// isMember reports whether id is a recorded member of rec.
func (r *Registry) isMember(rec *hierarchyRecord, id TypeID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := rec.members[id]
	return ok
}
