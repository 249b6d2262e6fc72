package config

import (
	"crypto/rand"
	"os"
	"strings"

	"go.mau.fi/util/exerrors"
	"go.mau.fi/zeroconfig"
)

type ConfigFilenames []string

func (f *ConfigFilenames) String() string {
	return strings.Join(*f, ", ")
}

func (f *ConfigFilenames) Set(value string) error {
	*f = append(*f, value)
	return nil
}

const (
	DefaultListenAddress = ":8090"
	DefaultCupTitle      = "Кубок Федерации спортивного ориентирования Новосибирской области по спортивному ориентированию"
)

// FixturesConfig points at on-disk fixtures. Empty paths use the fixtures
// embedded in the binary.
type FixturesConfig struct {
	EventFile  string `yaml:"event_file"`
	SeasonFile string `yaml:"season_file"`
}

type Configuration struct {
	secretKeyBytes []byte

	DevMode bool `yaml:"dev_mode"`

	ListenAddress  string `yaml:"listen_address"`
	Domain         string `yaml:"domain"`
	HealthcheckURL string `yaml:"healthcheck_url"`
	CupTitle       string `yaml:"cup_title"`

	Fixtures FixturesConfig `yaml:"fixtures"`

	SortSecretKeyFile string `yaml:"sort_secret_key_file"`
	SortSecretKey     string `yaml:"sort_secret_key"`

	Logging zeroconfig.Config `yaml:"logging"`
}

func (c *Configuration) GetListenAddress() string {
	if c.ListenAddress == "" {
		return DefaultListenAddress
	}
	return c.ListenAddress
}

func (c *Configuration) GetCupTitle() string {
	if c.CupTitle == "" {
		return DefaultCupTitle
	}
	return c.CupTitle
}

// ReadSecretKey returns the key that signs the sort cookie. Without a
// configured key a random one is generated, so sort state does not survive a
// restart.
func (c *Configuration) ReadSecretKey() []byte {
	if len(c.SortSecretKey) > 0 {
		return []byte(c.SortSecretKey)
	}

	if len(c.secretKeyBytes) == 0 {
		if c.SortSecretKeyFile != "" {
			c.secretKeyBytes = exerrors.Must(os.ReadFile(c.SortSecretKeyFile))
		} else {
			c.secretKeyBytes = make([]byte, 32)
			exerrors.Must(rand.Read(c.secretKeyBytes))
		}
	}
	return c.secretKeyBytes
}
