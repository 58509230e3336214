package engine

import (
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/physics"
)

// TeamPair is an ordered pair of teams
// For container pairs A is the container team and B the contained team
type TeamPair struct {
	A, B core.Team
}

// Stats counts the work of one Resolve call
type Stats struct {
	PairsTested  int
	Contacts     int
	Containments int
}

func (s *Stats) add(o Stats) {
	s.PairsTested += o.PairsTested
	s.Contacts += o.Contacts
	s.Containments += o.Containments
}

// CollisionHandler caches which teams collide and which contain each other
// Pairs are fixed once sealed; resolution only reads them
type CollisionHandler struct {
	teams      *core.NameTable[core.Team]
	collisions []TeamPair
	containers []TeamPair
	sealed     bool
	log        *zap.Logger
}

// NewCollisionHandler creates a handler validating team ids against teams
// A nil table accepts any non-zero team id
func NewCollisionHandler(teams *core.NameTable[core.Team], log *zap.Logger) *CollisionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CollisionHandler{teams: teams, log: log}
}

func (h *CollisionHandler) checkTeam(op string, t core.Team) error {
	if t == 0 || (h.teams != nil && int(t) > h.teams.Len()) {
		return core.ConfigError(op, "unknown team id", core.ErrUnknownTeam).With("Team", t)
	}
	return nil
}

func (h *CollisionHandler) checkOpen(op string) error {
	if h.sealed {
		return core.InvariantError(op, "pairing is fixed after configuration", core.ErrHandlerSealed)
	}
	return nil
}

// AddCollisionPair lets members of a and b test against each other
// A pair already present in either orientation is ignored
func (h *CollisionHandler) AddCollisionPair(a, b core.Team) error {
	const op = "CollisionHandler.AddCollisionPair"
	if err := h.validateCollision(op, a, b); err != nil {
		return err
	}
	if h.hasCollision(a, b) {
		h.log.Warn("duplicate collision pair ignored",
			zap.Uint16("team_a", uint16(a)), zap.Uint16("team_b", uint16(b)))
		return nil
	}
	h.collisions = append(h.collisions, TeamPair{a, b})
	return nil
}

func (h *CollisionHandler) validateCollision(op string, a, b core.Team) error {
	if err := h.checkOpen(op); err != nil {
		return err
	}
	if err := h.checkTeam(op, a); err != nil {
		return err
	}
	if err := h.checkTeam(op, b); err != nil {
		return err
	}
	if a == b {
		return core.ConfigError(op, "team cannot collide with itself", core.ErrMalformedPairing).
			With("Team", a)
	}
	return nil
}

// AddContainerPair keeps members of contained inside members of container
// The inverse of an existing rule is malformed; an exact duplicate is ignored
func (h *CollisionHandler) AddContainerPair(container, contained core.Team) error {
	const op = "CollisionHandler.AddContainerPair"
	if err := h.validateContainer(op, container, contained); err != nil {
		return err
	}
	if slices.Contains(h.containers, TeamPair{container, contained}) {
		h.log.Warn("duplicate container pair ignored",
			zap.Uint16("container", uint16(container)), zap.Uint16("contained", uint16(contained)))
		return nil
	}
	h.containers = append(h.containers, TeamPair{container, contained})
	return nil
}

func (h *CollisionHandler) validateContainer(op string, container, contained core.Team) error {
	if err := h.checkOpen(op); err != nil {
		return err
	}
	if err := h.checkTeam(op, container); err != nil {
		return err
	}
	if err := h.checkTeam(op, contained); err != nil {
		return err
	}
	if container == contained {
		return core.ConfigError(op, "team cannot contain itself", core.ErrMalformedPairing).
			With("Team", container)
	}
	if slices.Contains(h.containers, TeamPair{contained, container}) {
		return core.ConfigError(op, "inverse container rule exists", core.ErrMalformedPairing).
			With("Container", container).With("Contained", contained)
	}
	return nil
}

func (h *CollisionHandler) hasCollision(a, b core.Team) bool {
	return slices.Contains(h.collisions, TeamPair{a, b}) || slices.Contains(h.collisions, TeamPair{b, a})
}

// Configure resolves and adds the rules of a scene document
// Every rule is validated before any is added
func (h *CollisionHandler) Configure(rules config.CollisionRules, teams *core.NameTable[core.Team]) error {
	const op = "CollisionHandler.Configure"
	if err := h.checkOpen(op); err != nil {
		return err
	}

	resolve := func(kind string, rule []string) (TeamPair, error) {
		if len(rule) != 2 {
			return TeamPair{}, core.ConfigError(op, "rule must name exactly two teams", core.ErrMalformedPairing).
				With("Rule", kind).With("Teams", rule)
		}
		var ids [2]core.Team
		for i, name := range rule {
			id, ok := teams.Lookup(name)
			if !ok {
				return TeamPair{}, core.ConfigError(op, "unknown team in rule", core.ErrUnknownTeam).
					With("Rule", kind).With("Team", name)
			}
			ids[i] = id
		}
		return TeamPair{ids[0], ids[1]}, nil
	}

	collisions := make([]TeamPair, 0, len(rules.CollisionRules))
	for _, r := range rules.CollisionRules {
		p, err := resolve("collision", r)
		if err != nil {
			return err
		}
		if p.A == p.B {
			return core.ConfigError(op, "team cannot collide with itself", core.ErrMalformedPairing).
				With("Team", r[0])
		}
		collisions = append(collisions, p)
	}
	containers := make([]TeamPair, 0, len(rules.ContainerRules))
	for _, r := range rules.ContainerRules {
		p, err := resolve("container", r)
		if err != nil {
			return err
		}
		if p.A == p.B || slices.Contains(containers, TeamPair{p.B, p.A}) || slices.Contains(h.containers, TeamPair{p.B, p.A}) {
			return core.ConfigError(op, "malformed container rule", core.ErrMalformedPairing).
				With("Container", r[0]).With("Contained", r[1])
		}
		containers = append(containers, p)
	}

	if h.teams == nil {
		h.teams = teams
	}
	for _, p := range collisions {
		if err := h.AddCollisionPair(p.A, p.B); err != nil {
			return err
		}
	}
	for _, p := range containers {
		if err := h.AddContainerPair(p.A, p.B); err != nil {
			return err
		}
	}
	return nil
}

// Seal fixes the pairing; later Add calls fail
func (h *CollisionHandler) Seal() { h.sealed = true }

func (h *CollisionHandler) Sealed() bool { return h.sealed }

func (h *CollisionHandler) CollisionPairs() []TeamPair { return slices.Clone(h.collisions) }
func (h *CollisionHandler) ContainerPairs() []TeamPair { return slices.Clone(h.containers) }

// Teams returns every team named by a rule, in first-reference order
func (h *CollisionHandler) Teams() []core.Team {
	var out []core.Team
	add := func(t core.Team) {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	for _, p := range h.collisions {
		add(p.A)
		add(p.B)
	}
	for _, p := range h.containers {
		add(p.A)
		add(p.B)
	}
	return out
}

// PrepareLayer gives the layer an empty bucket for every referenced team
func (h *CollisionHandler) PrepareLayer(l *ContextLayer) {
	for _, t := range h.Teams() {
		l.ensureTeam(t)
	}
}

// eligible reports whether o may still take part in a test this frame
func eligible(o *Object) bool {
	return o.CollisionActive()
}

// Resolve runs the collision then containment phase for one layer
// Order is collision pair registration order, then team list order
// Destroy and active flags are checked before every test
func (h *CollisionHandler) Resolve(l *ContextLayer) Stats {
	var st Stats

	for _, p := range h.collisions {
		as := l.members(p.A)
		bs := l.members(p.B)
		for _, a := range as {
			for _, b := range bs {
				if !eligible(a) || !eligible(b) {
					continue
				}
				st.PairsTested++
				c, ok := physics.Collide(a.Body(), b.Body())
				if !ok {
					continue
				}
				st.Contacts++
				dispatchCollision(a, b, c)
				if !b.IsDestroyed() {
					dispatchCollision(b, a, c.Invert())
				}
			}
		}
	}

	for _, p := range h.containers {
		outers := l.members(p.A)
		inners := l.members(p.B)
		for _, in := range inners {
			for _, out := range outers {
				if !eligible(in) || !eligible(out) {
					continue
				}
				ib := in.Bounds()
				ob := out.Bounds()
				c, exceeded := physics.Exceeds(ob, ib)
				if !exceeded {
					continue
				}
				st.Containments++
				if hook, ok := As[ContainmentHandler](in.Behavior); ok {
					hook.OnContainment(in, out, c)
					continue
				}
				clampInside(in, ib, ob, c)
			}
		}
	}
	return st
}

func dispatchCollision(self, other *Object, c physics.Contact) {
	if hook, ok := As[Collider](self.Behavior); ok {
		hook.OnCollision(self, other, c)
	}
}

// clampInside moves o so its bounds lie in outer and stops outward motion
func clampInside(o *Object, bounds, outer core.Rect, c physics.Contact) {
	pos := physics.ClampInside(bounds.Min(), bounds.Size(), outer)
	o.Position = o.Position.Add(pos.Sub(bounds.Min()))
	if o.Movable != nil {
		o.Movable.Velocity = physics.StopOutward(o.Movable.Velocity, c.Overlap)
	}
}
