package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		SQLite struct {
			Path string `json:"path"`
		} `json:"sqlite,omitempty"`
	} `json:"storage,omitempty"`

	Cache struct {
		Address        string   `json:"redis_address"`
		Password       string   `json:"redis_password"`
		DB             int      `json:"redis_db"`
		ResultTTL      Duration `json:"result_ttl"`
		EngineReadyTTL Duration `json:"engine_ready_ttl"`
	} `json:"cache,omitempty"`

	RateLimit struct {
		Requests      int              `json:"requests"`
		Window        Duration         `json:"window"`
		Analyze       jsonActionPolicy `json:"analyze,omitempty"`
		AnalyzeBase64 jsonActionPolicy `json:"analyze_base64,omitempty"`
	} `json:"rate_limit,omitempty"`

	Engine struct {
		ModelVersion string   `json:"model_version"`
		WarmupDelay  Duration `json:"warmup_delay"`
	} `json:"engine,omitempty"`
}

type jsonActionPolicy struct {
	Requests int      `json:"requests"`
	Window   Duration `json:"window"`
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
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			SQLite: SQLite{
				Path: jsonCfg.Storage.SQLite.Path,
			},
		},
		Cache: Cache{
			Address:        jsonCfg.Cache.Address,
			Password:       jsonCfg.Cache.Password,
			DB:             jsonCfg.Cache.DB,
			ResultTTL:      time.Duration(jsonCfg.Cache.ResultTTL),
			EngineReadyTTL: time.Duration(jsonCfg.Cache.EngineReadyTTL),
		},
		RateLimit: RateLimit{
			Requests: jsonCfg.RateLimit.Requests,
			Window:   time.Duration(jsonCfg.RateLimit.Window),
			Analyze: ActionPolicy{
				Requests: jsonCfg.RateLimit.Analyze.Requests,
				Window:   time.Duration(jsonCfg.RateLimit.Analyze.Window),
			},
			AnalyzeBase64: ActionPolicy{
				Requests: jsonCfg.RateLimit.AnalyzeBase64.Requests,
				Window:   time.Duration(jsonCfg.RateLimit.AnalyzeBase64.Window),
			},
		},
		Engine: Engine{
			ModelVersion: jsonCfg.Engine.ModelVersion,
			WarmupDelay:  time.Duration(jsonCfg.Engine.WarmupDelay),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
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
