package diagram

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DecodeJSON reads a diagram from JSON.
func DecodeJSON(r io.Reader) (*Diagram, error) {
	var d Diagram
	dec := json.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("diagram: decode json: %w", err)
	}

	return &d, nil
}

// EncodeJSON writes the diagram as indented JSON.
func (d *Diagram) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("diagram: encode json: %w", err)
	}

	return nil
}

// DecodeYAML reads a diagram from YAML.
func DecodeYAML(r io.Reader) (*Diagram, error) {
	var d Diagram
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("diagram: decode yaml: %w", err)
	}

	return &d, nil
}

// EncodeYAML writes the diagram as YAML.
func (d *Diagram) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("diagram: encode yaml: %w", err)
	}

	return nil
}

// Load reads a diagram file, selecting the codec from the extension:
// .json for JSON, .yaml/.yml for YAML. Anything else is ErrUnknownFormat.
func Load(path string) (*Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("diagram: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(f)
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Save writes the diagram to a file, selecting the codec from the
// extension the same way Load does.
func (d *Diagram) Save(path string) error {
	var codec func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		codec = d.EncodeJSON
	case ".yaml", ".yml":
		codec = d.EncodeYAML
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("diagram: create %s: %w", path, err)
	}

	if err = codec(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// exportEnvelope is the sharing format: the document plus a timestamp,
// mirroring the ArchiComm project export.
type exportEnvelope struct {
	Diagram    *Diagram  `json:"diagram"`
	ExportedAt time.Time `json:"exported_at"`
}

// Export writes the diagram wrapped in a timestamped pretty-JSON envelope.
// The timestamp is UTC, RFC 3339.
func (d *Diagram) Export(w io.Writer) error {
	env := exportEnvelope{Diagram: d, ExportedAt: time.Now().UTC()}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("diagram: export: %w", err)
	}

	return nil
}
