package config

type ServerConfig struct {
	ServerPort  int `yaml:"port"`
	MetricsAddr int `yaml:"metrics-port"`
}

func (s *ServerConfig) Port() int {
	return s.ServerPort
}

func (s *ServerConfig) MetricsPort() int {
	return s.MetricsAddr
}
