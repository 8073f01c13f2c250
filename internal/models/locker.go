package models

// Profile is the owner information shown in the hero section
type Profile struct {
	Name    string   `json:"name" yaml:"name"`
	Tagline string   `json:"tagline" yaml:"tagline"`
	Chips   []string `json:"chips" yaml:"chips"`
	Links   []Link   `json:"links" yaml:"links"`
}

// Locker is the whole portfolio document.
// Profile is a pointer so a document without one can be told apart
// from a document with an empty one.
type Locker struct {
	Profile  *Profile  `json:"profile" yaml:"profile"`
	Projects []Project `json:"projects" yaml:"projects"`
}
