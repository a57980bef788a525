package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is loaded once at process start by MustLoad.
type Config struct {
	Env       string          `yaml:"env" env-default:"local"`
	DictPath  string          `yaml:"dict_path" env-required:"true"`
	InputPath string          `yaml:"input_path" env-default:""`
	Workers   int             `yaml:"workers" env-default:"4"`
	TrieCache TrieCacheConfig `yaml:"trie_cache"`
}

// TrieCacheConfig configures the sealed-trie persistence layer in
// internal/storage/triecache.
type TrieCacheConfig struct {
	Dir     string `yaml:"dir" env-default:"./data/triecache"`
	Enabled bool   `yaml:"enabled" env-default:"true"`
}

// MustLoad reads configuration from a YAML file (path resolved from the
// -config flag, the CONFIG_PATH env var, or a hardcoded default, in that
// priority order), applies any command-line overrides, and panics on
// failure — there is no sensible way to continue without a valid config.
func MustLoad() *Config {
	configPathFlag := flag.String("config", "", "Path to the config file")
	dictPathFlag := flag.String("dict-path", "", "Path to the dictionary file")
	inputPathFlag := flag.String("input-path", "", "Path to the input text file")
	workersFlag := flag.Int("workers", 0, "Worker-pool size for concurrent tokenization")
	flag.Parse()

	configPath := *configPathFlag
	if configPath == "" {
		configPath = fetchConfigPath()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("error loading config file: " + err.Error())
	}

	if *dictPathFlag != "" {
		cfg.DictPath = *dictPathFlag
	}
	if *inputPathFlag != "" {
		cfg.InputPath = *inputPathFlag
	}
	if *workersFlag != 0 {
		cfg.Workers = *workersFlag
	}

	return &cfg
}

// fetchConfigPath resolves the config file path. Priority: flag (handled
// by the caller) > CONFIG_PATH env var > default.
func fetchConfigPath() string {
	var res string

	res = os.Getenv("CONFIG_PATH")
	if res == "" {
		cwd, _ := os.Getwd()
		fmt.Println("Current working directory:", cwd)
	}

	if res == "" {
		res = "./config/config_local.yaml"
	}

	fmt.Println("Config path:", res)
	return res
}
