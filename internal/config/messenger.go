package config

type MessengerConfig struct {
	AccessToken   string `yaml:"token"`
	ChannelSecret string `yaml:"secret"`
	BaseURL       string `yaml:"api-base"`
}

func (m *MessengerConfig) Token() string {
	return m.AccessToken
}

func (m *MessengerConfig) Secret() string {
	return m.ChannelSecret
}

func (m *MessengerConfig) APIBase() string {
	return m.BaseURL
}
