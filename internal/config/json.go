package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// [Duration] wrapper so time fields can be written as "15s"-style strings.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		FoodAPIBaseURL string   `json:"food_api_url"`
		RequestTimeout Duration `json:"request_timeout"`
		SearchPageSize int      `json:"search_page_size"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CacheRefreshInterval Duration `json:"cache_refresh_interval"`
	} `json:"workers,omitempty"`
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
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Path: jsonCfg.Storage.DB.Path,
			},
		},
		Adapter: Adapter{
			FoodAPIBaseURL: jsonCfg.Adapter.FoodAPIBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			SearchPageSize: jsonCfg.Adapter.SearchPageSize,
		},
		Workers: Workers{
			CacheRefreshInterval: time.Duration(jsonCfg.Workers.CacheRefreshInterval),
		},
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
