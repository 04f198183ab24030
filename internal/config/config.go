// Package config assembles script configuration once at startup. Keys resolve
// from the process environment first, then from a dev.env key=value file.
// Components never read ambient state; they receive a Config.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/apperrors"
)

// DefaultEnvFile is the fallback settings file loaded when present.
const DefaultEnvFile = "dev.env"

// Config holds every setting the scripts recognize.
type Config struct {
	APIKey         string
	Host           string
	OrgID          string
	InputDir       string
	OutputDir      string
	InviteRole     string
	InviteRoleCode string
	InviteMessage  string
}

func defaults(v *viper.Viper) {
	v.SetDefault("INPUT_DIR", "./data/input")
	v.SetDefault("OUTPUT_DIR", "./data/output")
	v.SetDefault("INVITE_ROLE", "manager")
	v.SetDefault("INVITE_ROLE_CODE", "1")
	v.SetDefault("INVITE_MESSAGE", "Welcome to the Pennsieve Hackathon")
}

// Load reads configuration from the environment with envFile as fallback.
// A missing env file is not an error; a present but unreadable one is.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	defaults(v)

	for _, key := range []string{
		"API_KEY", "PENNSIEVE_HOST", "ORG_ID",
		"INPUT_DIR", "OUTPUT_DIR",
		"INVITE_ROLE", "INVITE_ROLE_CODE", "INVITE_MESSAGE",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		APIKey:         v.GetString("API_KEY"),
		Host:           v.GetString("PENNSIEVE_HOST"),
		OrgID:          v.GetString("ORG_ID"),
		InputDir:       v.GetString("INPUT_DIR"),
		OutputDir:      v.GetString("OUTPUT_DIR"),
		InviteRole:     v.GetString("INVITE_ROLE"),
		InviteRoleCode: v.GetString("INVITE_ROLE_CODE"),
		InviteMessage:  v.GetString("INVITE_MESSAGE"),
	}, nil
}

// Require returns ConfigMissing for the first named key whose value is empty.
// Scripts validate only the keys they use.
func (c *Config) Require(keys ...string) error {
	for _, key := range keys {
		var val string
		switch key {
		case "API_KEY":
			val = c.APIKey
		case "PENNSIEVE_HOST":
			val = c.Host
		case "ORG_ID":
			val = c.OrgID
		default:
			val = ""
		}
		if val == "" {
			return apperrors.ConfigMissing(key)
		}
	}
	return nil
}
