// Package scheduledoc reads and writes throw schedules as versioned YAML
// documents. JSON input works too, being a subset of YAML.
//
//	version: 1
//	notation: "531"
//	throws: [[[{value: 5, from: 0, to: 0}]], [[{value: 3, from: 0, to: 0}]], [[{value: 1, from: 0, to: 0}]]]
//
// throws nests beats, hands, releases and tosses. A missing toss field is
// reported as schedule.ErrStructure, the same as any other shape problem.
package scheduledoc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/siteswap/schedule"
)

// Version is the only document version understood.
const Version = 1

// ErrVersion indicates an unsupported document version.
var ErrVersion = errors.New("scheduledoc: unsupported document version")

// Document is the on-disk form of a schedule.
type Document struct {
	Version  int        `yaml:"version"`
	Notation string     `yaml:"notation,omitempty"`
	Throws   [][][]Toss `yaml:"throws,flow"`
}

// Toss mirrors schedule.Toss with optional fields so that absent keys can be
// told apart from zeros.
type Toss struct {
	Value *int `yaml:"value"`
	From  *int `yaml:"from"`
	To    *int `yaml:"to"`
}

// Decode parses a single document. A throws value of the wrong shape (for
// example a scalar where a list of beats belongs) is reported as
// schedule.ErrStructure.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", schedule.ErrStructure, err)
		}
		return nil, fmt.Errorf("scheduledoc: parsing YAML: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, doc.Version)
	}

	return &doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("scheduledoc: reading %s: %w", path, err)
	}

	return Decode(data)
}

// Schedule converts the document into a typed schedule. It only checks that
// every toss carries all three fields; the remaining shape rules belong to
// schedule.ValidateStructure.
func (d *Document) Schedule() (schedule.Schedule, error) {
	s := make(schedule.Schedule, len(d.Throws))
	for beat, hands := range d.Throws {
		s[beat] = make(schedule.Action, len(hands))
		for hand, release := range hands {
			s[beat][hand] = make(schedule.Release, len(release))
			for i, t := range release {
				if t.Value == nil || t.From == nil || t.To == nil {
					return nil, fmt.Errorf("%w: beat %d hand %d toss %d: missing %s",
						schedule.ErrStructure, beat, hand, i, t.missing())
				}
				s[beat][hand][i] = schedule.Toss{Value: *t.Value, From: *t.From, To: *t.To}
			}
		}
	}

	return s, nil
}

func (t Toss) missing() string {
	switch {
	case t.Value == nil:
		return "value"
	case t.From == nil:
		return "from"
	default:
		return "to"
	}
}

// FromSchedule builds a document for s.
func FromSchedule(s schedule.Schedule, notation string) *Document {
	doc := &Document{Version: Version, Notation: notation, Throws: make([][][]Toss, len(s))}
	for beat, action := range s {
		doc.Throws[beat] = make([][]Toss, len(action))
		for hand, release := range action {
			doc.Throws[beat][hand] = make([]Toss, len(release))
			for i, t := range release {
				value, from, to := t.Value, t.From, t.To
				doc.Throws[beat][hand][i] = Toss{Value: &value, From: &from, To: &to}
			}
		}
	}

	return doc
}

// Encode writes docs as a YAML stream, one document each.
func Encode(w io.Writer, docs ...*Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("scheduledoc: encoding: %w", err)
		}
	}

	return enc.Close()
}
