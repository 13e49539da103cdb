package study

import (
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Manifest records how a study run was launched. It is written to the
// study workdir before the DAKOTA process starts so that even failed
// runs leave a traceable record.
type Manifest struct {
	RunID     string    `yaml:"run_id"`
	Study     string    `yaml:"study"`
	Driver    string    `yaml:"driver"`
	DakotaBin string    `yaml:"dakota_bin"`
	Args      []string  `yaml:"args"`
	DeckSHA   string    `yaml:"deck_sha256"`
	CreatedAt time.Time `yaml:"created_at"`
}

// NewManifest builds a manifest with a fresh run ID. deckText is the
// rendered input deck; its hash lets a run be matched to the exact deck
// that produced it.
func NewManifest(study, driver, bin string, args []string, deckText string) *Manifest {
	return &Manifest{
		RunID:     uuid.NewString(),
		Study:     study,
		Driver:    driver,
		DakotaBin: bin,
		Args:      args,
		DeckSHA:   fmt.Sprintf("%x", sha256.Sum256([]byte(deckText))),
		CreatedAt: time.Now().UTC(),
	}
}

// WriteFile serializes the manifest as YAML.
func (m *Manifest) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating run manifest: %w", err)
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	defer enc.Close()
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding run manifest: %w", err)
	}
	return nil
}

// LoadManifest reads a manifest back from disk.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding run manifest: %w", err)
	}
	return &m, nil
}
