package preview

import (
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Selectors are the CSS selectors used to wait for a tweet page to render.
type Selectors struct {
	TweetContainer string
	TweetText      string
	AuthorName     string
}

// SelectorConfig holds Selectors loaded from YAML and reloads them when the
// file changes.
type SelectorConfig struct {
	mu          sync.RWMutex
	current     Selectors
	lastModTime time.Time
	filePath    string
	stop        chan struct{}
	once        sync.Once
}

// rawConfig represents the YAML structure.
type rawConfig struct {
	Tweet struct {
		Container string `yaml:"container"`
		Text      string `yaml:"text"`
	} `yaml:"tweet"`
	Author struct {
		Name string `yaml:"name"`
	} `yaml:"author"`
}

// LoadSelectors reads filePath and watches it for changes every interval.
// A zero interval disables watching.
func LoadSelectors(filePath string, interval time.Duration) (*SelectorConfig, error) {
	c := &SelectorConfig{filePath: filePath, stop: make(chan struct{})}
	if err := c.reload(); err != nil {
		return nil, err
	}

	if interval > 0 {
		go c.watch(interval)
	}
	return c, nil
}

// StaticSelectors returns a config that never reloads.
func StaticSelectors(s Selectors) *SelectorConfig {
	return &SelectorConfig{current: s, stop: make(chan struct{})}
}

func (c *SelectorConfig) reload() error {
	info, err := os.Stat(c.filePath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		return err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.mu.Lock()
	c.current = Selectors{
		TweetContainer: raw.Tweet.Container,
		TweetText:      raw.Tweet.Text,
		AuthorName:     raw.Author.Name,
	}
	c.lastModTime = info.ModTime()
	c.mu.Unlock()
	return nil
}

// reloadIfChanged reloads when the file is newer than the last load.
func (c *SelectorConfig) reloadIfChanged() (bool, error) {
	info, err := os.Stat(c.filePath)
	if err != nil {
		return false, err
	}

	c.mu.RLock()
	last := c.lastModTime
	c.mu.RUnlock()

	if !info.ModTime().After(last) {
		return false, nil
	}
	return true, c.reload()
}

func (c *SelectorConfig) watch(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			_, _ = c.reloadIfChanged()
		}
	}
}

// Get returns the current selectors.
func (c *SelectorConfig) Get() Selectors {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Close stops watching the file.
func (c *SelectorConfig) Close() {
	c.once.Do(func() { close(c.stop) })
}
