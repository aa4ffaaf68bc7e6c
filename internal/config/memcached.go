package config

type MemcachedConfig struct {
	Nodes []string `yaml:"nodes"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.Nodes
}
