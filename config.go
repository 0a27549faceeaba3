package parents

import (
	"errors"
	"fmt"
	"io"
	"os"

	"bitbucket.org/creachadair/shell"
	"github.com/creachadair/atomicfile"
	yaml "gopkg.in/yaml.v3"
)

// Config stores default settings for the programs.
type Config struct {
	Skip     int
	Unique   bool
	DebugLog bool   `yaml:"debugLog"`
	Output   string // write output here instead of stdout
}

// LoadConfig loads a configuration from the file at path into *cfg.
// An empty path leaves cfg unchanged.
func LoadConfig(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding config %q: %w", path, err)
	} else if cfg.Skip < 0 {
		return fmt.Errorf("config %q: invalid skip %d", path, cfg.Skip)
	}
	return nil
}

// EnvFlags returns the command-line arguments stored in the named environment
// variable, split using shell quoting rules. An unset or empty variable yields
// no arguments.
func EnvFlags(name string) ([]string, error) {
	s := os.Getenv(name)
	if s == "" {
		return nil, nil
	}
	args, ok := shell.Split(s)
	if !ok {
		return nil, fmt.Errorf("invalid quoting in $%s", name)
	}
	return args, nil
}

// WriteOutput writes data to the file at path, atomically replacing any
// previous contents. If path is "" or "-", data are written to w instead.
func WriteOutput(path string, w io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	return atomicfile.WriteData(path, data, 0644)
}
