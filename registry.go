package charengine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ──────────────────────────────────────────────
// Personality registry — total lookup with default fallback
// ──────────────────────────────────────────────

// PersonalityRegistry maps agent ids to immutable profiles.
// Get is a total function: unknown ids resolve to the designated default
// profile. A registry without its default profile is a configuration error
// and is rejected at construction time, never at request time.
type PersonalityRegistry struct {
	mu        sync.RWMutex
	profiles  map[string]*AgentPersonality
	defaultID string
}

// NewPersonalityRegistry creates a registry preloaded with the built-in
// profiles, using DefaultAgentID as the fallback.
func NewPersonalityRegistry() *PersonalityRegistry {
	r, err := NewPersonalityRegistryWith(DefaultAgentID, builtinProfiles())
	if err != nil {
		// Unreachable: builtinProfiles always contains DefaultAgentID.
		panic(err)
	}
	return r
}

// NewPersonalityRegistryWith creates a registry from an explicit profile
// set. Returns an error if defaultID is not among the given profiles.
func NewPersonalityRegistryWith(defaultID string, profiles []*AgentPersonality) (*PersonalityRegistry, error) {
	r := &PersonalityRegistry{
		profiles:  make(map[string]*AgentPersonality, len(profiles)),
		defaultID: defaultID,
	}
	for _, p := range profiles {
		if p == nil || p.ID == "" {
			return nil, fmt.Errorf("registry: profile without id")
		}
		r.profiles[p.ID] = p
	}
	if _, ok := r.profiles[defaultID]; !ok {
		return nil, fmt.Errorf("registry: default profile %q not registered", defaultID)
	}
	return r, nil
}

// Register adds or replaces a profile. The default entry cannot be removed,
// only replaced.
func (r *PersonalityRegistry) Register(p *AgentPersonality) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("registry: profile without id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

// Get resolves an agent id to its profile, falling back to the default
// profile for unknown ids.
func (r *PersonalityRegistry) Get(agentID string) *AgentPersonality {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.profiles[agentID]; ok {
		return p
	}
	return r.profiles[r.defaultID]
}

// Has reports whether an id is registered (without fallback).
func (r *PersonalityRegistry) Has(agentID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.profiles[agentID]
	return ok
}

// IDs returns all registered agent ids.
func (r *PersonalityRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	return ids
}

// DefaultID returns the designated fallback agent id.
func (r *PersonalityRegistry) DefaultID() string {
	return r.defaultID
}

// LoadDir loads additional profiles from a directory of per-agent JSON
// files ("<agent-id>.json"). Profiles are authored by hand, so files that
// fail to parse are reported rather than skipped silently.
func (r *PersonalityRegistry) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("registry: read dir: %w", err)
	}
	loaded := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return loaded, fmt.Errorf("registry: read %s: %w", e.Name(), err)
		}
		var p AgentPersonality
		if err := json.Unmarshal(data, &p); err != nil {
			return loaded, fmt.Errorf("registry: parse %s: %w", e.Name(), err)
		}
		if p.ID == "" {
			p.ID = strings.TrimSuffix(e.Name(), ".json")
		}
		if err := r.Register(&p); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// SaveProfile writes one profile as JSON into dir, the same layout LoadDir
// reads. Useful for seeding an authoring directory.
func SaveProfile(dir string, p *AgentPersonality) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("registry: profile without id")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("registry: create dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("registry: marshal %s: %w", p.ID, err)
	}
	path := filepath.Join(dir, p.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("registry: write %s: %w", path, err)
	}
	return nil
}
