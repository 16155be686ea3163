package config

// DomainConfig holds the configurable rules of the canvas graph
type DomainConfig struct {
	// Graph constraints
	MaxNodesPerGraph int
	MaxEdgesPerGraph int

	// Edge rules
	AllowSelfConnections bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxNodesPerGraph:     10000,
		MaxEdgesPerGraph:     50000,
		AllowSelfConnections: false,
	}
}

// Validate fills zero limits with defaults
func (c *DomainConfig) Validate() {
	defaults := DefaultDomainConfig()
	if c.MaxNodesPerGraph <= 0 {
		c.MaxNodesPerGraph = defaults.MaxNodesPerGraph
	}
	if c.MaxEdgesPerGraph <= 0 {
		c.MaxEdgesPerGraph = defaults.MaxEdgesPerGraph
	}
}
