package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field tags and
// string-friendly duration parsing. It exists so that the JSON file format
// can use human-readable durations ("30m", "168h") without forcing that
// representation on the rest of the application.
type StructuredJSONConfig struct {
	App struct {
		SecretKey       string   `json:"secret_key"`
		Algorithm       string   `json:"algorithm"`
		AccessTokenTTL  Duration `json:"access_token_ttl"`
		RefreshTokenTTL Duration `json:"refresh_token_ttl"`
		BcryptCost      int      `json:"bcrypt_cost"`
		Debug           bool     `json:"debug"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`
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
			TokenSignKey:    jsonCfg.App.SecretKey,
			TokenAlgorithm:  jsonCfg.App.Algorithm,
			AccessTokenTTL:  time.Duration(jsonCfg.App.AccessTokenTTL),
			RefreshTokenTTL: time.Duration(jsonCfg.App.RefreshTokenTTL),
			BcryptCost:      jsonCfg.App.BcryptCost,
			Debug:           jsonCfg.App.Debug,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
