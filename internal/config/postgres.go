package config

type PostgresConfig struct {
	DBHost string `yaml:"host"`
	DBPort int    `yaml:"port"`
	DBName string `yaml:"database"`
	User   string `yaml:"username"`
	Pass   string `yaml:"password"`
}

func (s *PostgresConfig) Host() string {
	return s.DBHost
}

func (s *PostgresConfig) Port() int {
	if s.DBPort == 0 {
		return 5432
	}
	return s.DBPort
}

func (s *PostgresConfig) Database() string {
	return s.DBName
}

func (s *PostgresConfig) Username() string {
	return s.User
}

func (s *PostgresConfig) Password() string {
	return s.Pass
}
