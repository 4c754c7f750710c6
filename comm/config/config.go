package config

import (
	"os"
	"time"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/aaronwong1989/godis/comm/logging"
)

const EnvConfPath = "GODIS_CONF_PATH"

type Config struct {
	// 仿真应用标识
	ExerciseID    uint8  `yaml:"exercise-id"`
	SiteID        uint16 `yaml:"site-id"`
	ApplicationID uint16 `yaml:"application-id"`

	// RequestID 生成器
	DataCenterId int32 `yaml:"datacenter-id"`
	WorkerId     int32 `yaml:"worker-id"`

	Listen Listen         `yaml:"listen"`
	Codec  Codec          `yaml:"codec"`
	Log    logging.Config `yaml:"log"`
}

type Listen struct {
	Address       string        `yaml:"address"`
	Multicore     bool          `yaml:"multicore"`
	MaxPoolSize   int           `yaml:"max-pool-size"`
	StatsInterval time.Duration `yaml:"stats-interval"`
}

type Codec struct {
	StampLength  bool `yaml:"stamp-length"`
	StrictLength bool `yaml:"strict-length"`
	SkipUnknown  bool `yaml:"skip-unknown"`
	MaxPduSize   int  `yaml:"max-pdu-size"`
}

// Default 未提供配置文件时使用的配置
func Default() Config {
	return Config{
		ExerciseID:    1,
		SiteID:        1,
		ApplicationID: 1,
		Listen: Listen{
			Address:       ":3000",
			Multicore:     true,
			MaxPoolSize:   256,
			StatsInterval: 30 * time.Second,
		},
		Codec: Codec{
			StampLength: true,
			SkipUnknown: true,
			MaxPduSize:  8192,
		},
		Log: logging.Config{Level: "info", MaxSizeMB: 100, MaxBackups: 7, MaxAgeDays: 30},
	}
}

// Load 读取 path 指定的YAML配置，path 为空时读取 $GODIS_CONF_PATH
// 文件中没有的配置项保留默认值，两者都未设置时直接返回 Default()
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		path = os.Getenv(EnvConfPath)
	}
	if path == "" {
		return conf, nil
	}
	bts, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.Wrap(err, "read config")
	}
	if err = yaml.Unmarshal(bts, &conf); err != nil {
		return conf, errors.Wrapf(err, "parse config %s", path)
	}
	if conf.Codec.MaxPduSize <= 0 || conf.Codec.MaxPduSize > 0xffff {
		return conf, errors.Errorf("codec.max-pdu-size %d out of range (0, 65535]", conf.Codec.MaxPduSize)
	}
	return conf, nil
}
