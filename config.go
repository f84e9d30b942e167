package termread

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Init sets the configuration defaults.
func (c *Config) Init() error {
	c.Keymap = make(map[string]string)
	c.EventBufferSize = DefaultEventBufferSize
	return nil
}

// ReadFilename reads the config from the given file, and does the
// appropriate validation, if any
func (c *Config) ReadFilename(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open file %s", filename)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return errors.Wrap(err, "failed to decode YAML")
	}

	if c.EventBufferSize < 0 {
		return errors.Errorf("invalid EventBufferSize: %d", c.EventBufferSize)
	}
	return nil
}
