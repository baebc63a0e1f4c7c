package cutsched

import "gopkg.in/yaml.v3"

// FamilyConfig is the configured strategy and frequency of one family.
type FamilyConfig struct {
	Strategy Strategy `yaml:"strategy"`
	Freq     int      `yaml:"freq"`
}

// UnmarshalYAML fills omitted fields with NotSet and DefaultFrequency.
func (f *FamilyConfig) UnmarshalYAML(n *yaml.Node) error {
	type plain FamilyConfig
	v := plain{Strategy: NotSet, Freq: DefaultFrequency}
	if err := n.Decode(&v); err != nil {
		return err
	}
	*f = FamilyConfig(v)

	return nil
}

// Config is the cut-family configuration from the parameter layer.
// A family missing from Families is NotSet with frequency 1.
type Config struct {
	Strategy Strategy                `yaml:"strategy"`
	Freq     int                     `yaml:"freq"`
	Families map[string]FamilyConfig `yaml:"families"`
}

// DefaultConfig leaves every strategy NotSet, so each family takes its fallback.
func DefaultConfig() Config {
	return Config{Strategy: NotSet, Freq: DefaultFrequency}
}

// AllNone returns a configuration that disables every named family.
func AllNone(names ...string) Config {
	cfg := DefaultConfig()
	cfg.Families = make(map[string]FamilyConfig, len(names))
	for _, n := range names {
		cfg.Families[n] = FamilyConfig{Strategy: None, Freq: DefaultFrequency}
	}

	return cfg
}

func (c Config) family(name string) FamilyConfig {
	if fc, ok := c.Families[name]; ok {
		return fc
	}

	return FamilyConfig{Strategy: NotSet, Freq: DefaultFrequency}
}
