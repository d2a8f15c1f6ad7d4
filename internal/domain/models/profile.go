package models

// Role is the persona the site presents.
type Role string

const (
	RoleDesigner  Role = "designer"
	RoleDeveloper Role = "developer"
)

// DefaultRole is used when the visitor has not chosen one.
const DefaultRole = RoleDesigner

// Valid reports whether r is a known persona.
func (r Role) Valid() bool {
	return r == RoleDesigner || r == RoleDeveloper
}

// SkillGroup is a named list of skills, e.g. "Tools" or "Languages".
type SkillGroup struct {
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

// Profile is the biography block shown for one role.
type Profile struct {
	Role       Role         `json:"role" yaml:"role"`
	Name       string       `json:"name" yaml:"name"`
	Headline   string       `json:"headline" yaml:"headline"`
	Bio        string       `json:"bio" yaml:"bio"`
	Skills     []SkillGroup `json:"skills" yaml:"skills"`
	Highlights []string     `json:"highlights,omitempty" yaml:"highlights"`
}
