package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		Port            int      `json:"port"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	DB struct {
		Driver   string `json:"driver"`
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Name     string `json:"name"`
		User     string `json:"user"`
		Password string `json:"password"`
		SSLMode  string `json:"ssl_mode"`

		ProbeInterval Duration `json:"probe_interval"`
	} `json:"db,omitempty"`

	Vault struct {
		URL        string   `json:"url"`
		Token      string   `json:"token"`
		SecretPath string   `json:"secret_path"`
		Timeout    Duration `json:"timeout"`
		Required   bool     `json:"required"`
	} `json:"vault,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			Port:            jsonCfg.Server.Port,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		DB: DB{
			Driver:   jsonCfg.DB.Driver,
			Host:     jsonCfg.DB.Host,
			Port:     jsonCfg.DB.Port,
			Name:     jsonCfg.DB.Name,
			User:     jsonCfg.DB.User,
			Password: jsonCfg.DB.Password,
			SSLMode:  jsonCfg.DB.SSLMode,

			ProbeInterval: time.Duration(jsonCfg.DB.ProbeInterval),
		},
		Vault: Vault{
			URL:        jsonCfg.Vault.URL,
			Token:      jsonCfg.Vault.Token,
			SecretPath: jsonCfg.Vault.SecretPath,
			Timeout:    time.Duration(jsonCfg.Vault.Timeout),
			Required:   jsonCfg.Vault.Required,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
