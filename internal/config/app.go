package config

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type AppConfig struct {
	TimezoneName string `yaml:"timezone"`
	StorageMode  string `yaml:"storage"`
}

func (s *AppConfig) Timezone() string {
	return s.TimezoneName
}

func (s *AppConfig) Storage() string {
	if s.StorageMode == "" {
		return StorageMemory
	}
	return s.StorageMode
}
