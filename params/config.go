package params

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/anyswap/ripple-ledger-core/common"
	"github.com/anyswap/ripple-ledger-core/log"
)

const (
	defaultVerbosity = 4 // logrus info level
	defaultCache     = 16
	defaultHandles   = 16

	maxVerbosity   = 6
	maxParallelism = 256
)

var (
	config     *Config
	configLock sync.RWMutex
)

// Config config items (decode from toml file)
type Config struct {
	Log       *LogConfig       `toml:",omitempty" json:",omitempty"`
	Hasher    *HasherConfig    `toml:",omitempty" json:",omitempty"`
	NodeStore *NodeStoreConfig `toml:",omitempty" json:",omitempty"`
}

// LogConfig log config
type LogConfig struct {
	Verbosity   uint32
	JSONFormat  bool
	ColorFormat bool
}

// HasherConfig ledger hasher config
type HasherConfig struct {
	// Parallelism is the number of goroutines hashing subtrees, 0 or 1 is serial.
	Parallelism int
	// SanityCheck re-decodes every account state entry before hashing it.
	SanityCheck bool
}

// NodeStoreConfig leveldb node store config. Exporting is disabled when the
// section is absent.
type NodeStoreConfig struct {
	DataDir string
	Cache   int `toml:",omitempty" json:",omitempty"`
	Handles int `toml:",omitempty" json:",omitempty"`
}

// DefaultConfig returns the config used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Log:    &LogConfig{Verbosity: defaultVerbosity},
		Hasher: &HasherConfig{},
	}
}

// GetConfig get current config
func GetConfig() *Config {
	configLock.RLock()
	defer configLock.RUnlock()
	if config == nil {
		return DefaultConfig()
	}
	return config
}

// SetConfig set current config
func SetConfig(c *Config) {
	configLock.Lock()
	defer configLock.Unlock()
	config = c
}

// LoadConfig decodes configFile over the defaults, checks the result and
// makes it current. An empty configFile selects the defaults.
func LoadConfig(configFile string) (*Config, error) {
	c := DefaultConfig()
	if configFile != "" {
		if !common.FileExist(configFile) {
			return nil, fmt.Errorf("config file %v not exist", configFile)
		}
		if _, err := toml.DecodeFile(configFile, c); err != nil {
			return nil, fmt.Errorf("toml decode %v: %w", configFile, err)
		}
	}
	c.applyDefaults()
	if err := c.CheckConfig(); err != nil {
		return nil, err
	}
	SetConfig(c)

	var bs []byte
	if c.Log.JSONFormat {
		bs, _ = json.Marshal(c)
	} else {
		bs, _ = json.MarshalIndent(c, "", "  ")
	}
	log.Debug("LoadConfig finished", "configFile", configFile, "config", string(bs))
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Log == nil {
		c.Log = &LogConfig{Verbosity: defaultVerbosity}
	}
	if c.Hasher == nil {
		c.Hasher = &HasherConfig{}
	}
	if c.NodeStore != nil {
		if c.NodeStore.Cache == 0 {
			c.NodeStore.Cache = defaultCache
		}
		if c.NodeStore.Handles == 0 {
			c.NodeStore.Handles = defaultHandles
		}
	}
}
