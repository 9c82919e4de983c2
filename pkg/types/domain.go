package types

// Definition is one catalog entry: a distribution the daemon knows how to
// install, independent of what is registered on the machine. Definitions are
// loaded once and never mutated afterwards.
type Definition struct {
	// Registration name and unique catalog key.
	// example: Ubuntu-24.04
	Name string `json:"name" yaml:"name" toml:"name" example:"Ubuntu-24.04"`
	// Human-friendly display name.
	// example: Ubuntu 24.04 LTS
	FriendlyName string `json:"friendly_name" yaml:"friendly_name" toml:"friendly_name" example:"Ubuntu 24.04 LTS"`
	// Publisher of the distribution image.
	// example: Canonical Group Limited
	Publisher string `json:"publisher,omitempty" yaml:"publisher" toml:"publisher" example:"Canonical Group Limited"`
	// Project or vendor homepage.
	// example: https://ubuntu.com/desktop/wsl
	Homepage string `json:"homepage,omitempty" yaml:"homepage" toml:"homepage" example:"https://ubuntu.com/desktop/wsl"`
	// Terminal profile identifier associated with the distribution.
	// example: {2c4de342-38b7-51cf-b940-2309a097f518}
	TerminalProfile string `json:"terminal_profile,omitempty" yaml:"terminal_profile" toml:"terminal_profile" example:"{2c4de342-38b7-51cf-b940-2309a097f518}"`
	// Logo path relative to the definition source; resolved at load time.
	LogoFile string `json:"-" yaml:"logo" toml:"logo"`
	// Logo payload bytes. Not serialized; served via the logo endpoint.
	Logo []byte `json:"-" yaml:"-" toml:"-"`
}

// Distribution is the consumer-facing record for one registered distribution:
// the host's live registration merged with catalog metadata when a definition
// with the same name exists. Without a matching definition only Name and
// Running are populated and HasDefinition is false.
type Distribution struct {
	// Registration name.
	// example: Ubuntu-24.04
	Name string `json:"name" example:"Ubuntu-24.04"`
	// Whether the distribution is currently running on the host.
	// example: true
	Running bool `json:"running" example:"true"`
	// Display name from the catalog, empty when no definition matched.
	// example: Ubuntu 24.04 LTS
	FriendlyName string `json:"friendly_name,omitempty" example:"Ubuntu 24.04 LTS"`
	// Publisher from the catalog.
	// example: Canonical Group Limited
	Publisher string `json:"publisher,omitempty" example:"Canonical Group Limited"`
	// Homepage from the catalog.
	// example: https://ubuntu.com/desktop/wsl
	Homepage string `json:"homepage,omitempty" example:"https://ubuntu.com/desktop/wsl"`
	// Terminal profile identifier from the catalog.
	// example: {2c4de342-38b7-51cf-b940-2309a097f518}
	TerminalProfile string `json:"terminal_profile,omitempty" example:"{2c4de342-38b7-51cf-b940-2309a097f518}"`
	// True when a catalog definition was merged into this record.
	// example: true
	HasDefinition bool `json:"has_definition" example:"true"`
}
