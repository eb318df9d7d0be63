package types

// Standard is a named compliance framework (e.g. ISO/IEC 27001) with a
// version and category.
type Standard struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Version  string `json:"version" yaml:"version"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// DisplayName returns the standard's name with its version appended when a
// version is set.
func (s Standard) DisplayName() string {
	if s.Version == "" {
		return s.Name
	}
	return s.Name + " " + s.Version
}
