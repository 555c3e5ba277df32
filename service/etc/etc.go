package etc

import (
	"bytes"
	_ "embed"
	"net"
	"strconv"
	"strings"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var Config *Configuration

//go:embed config.sample.yaml
var DefaultConfig []byte

// Configuration is the Configuration structure.
type Configuration struct {
	LogLevel string `mapstructure:"log_level"`

	Server struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
		// ShutdownTimeout is how long in-flight requests may take after a shutdown signal.
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`

	Challenge struct {
		// Timeout bounds the generation of one challenge, 0 disables it.
		Timeout time.Duration `mapstructure:"timeout"`

		// Defaults are used for the optional query parameters.
		Defaults struct {
			MinGap     float64 `mapstructure:"min_gap"`
			InnerRing  float64 `mapstructure:"inner_ring"`
			MidRing    float64 `mapstructure:"mid_ring"`
			OuterRing  float64 `mapstructure:"outer_ring"`
			InnerScore uint    `mapstructure:"inner_score"`
			MidScore   uint    `mapstructure:"mid_score"`
			OuterScore uint    `mapstructure:"outer_score"`
		} `mapstructure:"defaults"`
	} `mapstructure:"challenge"`
}

// Addr returns the address the server listens on.
func (c *Configuration) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "fatal":
		log.SetLevel(log.FatalLevel)
	case "panic":
		log.SetLevel(log.PanicLevel)
	default:
		log.WithField("level", level).Fatal("Invalid log level")
	}
}

// decode unmarshals the settings of v into a new Configuration.
//
// Unknown keys are rejected.
func decode(v *viper.Viper) (*Configuration, error) {
	var conf Configuration
	if err := v.UnmarshalExact(&conf, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
		dc.ZeroFields = true
	}); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if conf.Server.Port < 0 || conf.Server.Port > 65535 {
		return nil, errors.Errorf("invalid port %d", conf.Server.Port)
	}
	if conf.Challenge.Timeout < 0 {
		return nil, errors.Errorf("invalid challenge timeout %s", conf.Challenge.Timeout)
	}
	return &conf, nil
}

// Parse reads a YAML configuration, filling missing keys from the default config.
func Parse(data []byte) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(DefaultConfig)); err != nil {
		return nil, errors.Wrap(err, "failed to read default config")
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	return decode(v)
}

func loadConfig() {
	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(bytes.NewReader(DefaultConfig)); err != nil {
		log.WithError(err).Fatal("Failed to read default config")
	}
	viper.SetConfigName("config")
	viper.AddConfigPath("/etc/fsxchallenge/")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("fsx")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.WithError(err).Fatal("Failed to read config")
		}
		log.Info("No config file found, use default config")
	}
	var err error
	if Config, err = decode(viper.GetViper()); err != nil {
		log.WithError(err).Fatal("Invalid config")
	}
}

func init() {
	log.SetFormatter(&nested.Formatter{})
	loadConfig()
	setLogLevel(Config.LogLevel)
	log.WithField("addr", Config.Addr()).Info("Loaded config")
}
