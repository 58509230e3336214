package config

// Scene is a scene document: tables, rules, layers and their objects
type Scene struct {
	Name           string         `yaml:"name"`
	Teams          []string       `yaml:"teams,omitempty"`
	CollisionTypes []string       `yaml:"collision_types,omitempty"`
	Collision      CollisionRules `yaml:"collision"`
	Input          *InputSpec     `yaml:"input,omitempty"`
	Sounds         []ToneSpec     `yaml:"sounds,omitempty"`
	Prototypes     []ObjectSpec   `yaml:"prototypes,omitempty"`
	Layers         []LayerSpec    `yaml:"layers"`
	Camera         *CameraSpec    `yaml:"camera,omitempty"`
}

// CollisionRules are ordered team-name pairs
// Collision rules make the two teams test for overlap, container rules keep
// the second team's members inside the first team's members
type CollisionRules struct {
	CollisionRules [][]string `yaml:"collision_rules,omitempty"`
	ContainerRules [][]string `yaml:"container_rules,omitempty"`
}

// LayerSpec describes one context layer
type LayerSpec struct {
	Name          string       `yaml:"name"`
	Position      *Point       `yaml:"position,omitempty"`
	MovementScale *Point       `yaml:"movement_scale,omitempty"`
	Width         float64      `yaml:"width"`
	Height        float64      `yaml:"height"`
	Objects       []ObjectSpec `yaml:"objects,omitempty"`
}

// CameraSpec names the layer and object the lead camera follows
type CameraSpec struct {
	Layer  string  `yaml:"layer"`
	Follow string  `yaml:"follow,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// InputSpec binds key names, runes and mouse buttons to named actions
type InputSpec struct {
	Keys  map[string]BindingSpec `yaml:"keys,omitempty"`
	Runes map[string]BindingSpec `yaml:"runes,omitempty"`
	Mouse map[string]BindingSpec `yaml:"mouse,omitempty"`
}

// BindingSpec is one action binding
// Kind is "boolean" (default), "scalar" or "vector"
type BindingSpec struct {
	Action string  `yaml:"action"`
	Kind   string  `yaml:"kind,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
	Vector *Point  `yaml:"vector,omitempty"`
}

// ToneSpec describes a synthesized sound effect
type ToneSpec struct {
	Name       string  `yaml:"name"`
	Wave       string  `yaml:"wave,omitempty"`
	Frequency  float64 `yaml:"frequency"`
	DurationMs int     `yaml:"duration_ms"`
	Volume     float64 `yaml:"volume,omitempty"`
}
