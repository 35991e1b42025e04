package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
}

type StorageConfig struct {
	// Backend selects where uploaded images live: "local" or "s3".
	Backend string   `yaml:"backend"`
	Path    string   `yaml:"path"`
	BaseURL string   `yaml:"baseUrl"`
	S3      S3Config `yaml:"s3"`
}

type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Prefix          string `yaml:"prefix"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyId"`
	SecretAccessKey string `yaml:"secretAccessKey"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CleanConfig   CleanConfig   `yaml:"clean"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule      string `yaml:"schedule"`
	RetentionDays int    `yaml:"retentionDays"`
}

type AuthConfig struct {
	JWTSecret    string `yaml:"jwtSecret"`
	TokenTTLMins int    `yaml:"tokenTtlMinutes"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	setDefaults(&config)
	return &config, nil
}

func setDefaults(config *Configuration) {
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.Concurrency == 0 {
		config.Server.Concurrency = 256
	}
	if config.Server.RequestConfig.SizeLimit == 0 {
		config.Server.RequestConfig.SizeLimit = 10
	}
	if config.Server.CleanConfig.Schedule == "" {
		config.Server.CleanConfig.Schedule = "0 3 * * *"
	}
	if config.Server.CleanConfig.RetentionDays == 0 {
		config.Server.CleanConfig.RetentionDays = 30
	}
	if config.Storage.Backend == "" {
		config.Storage.Backend = "local"
	}
	if config.Auth.TokenTTLMins == 0 {
		config.Auth.TokenTTLMins = 60
	}
}
