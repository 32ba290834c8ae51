package preprocessor

import (
	"bytes"
	"strings"

	"github.com/smith-xyz/autologger/pkg/host/estree"
	"github.com/smith-xyz/autologger/pkg/host/gosrc"
	"github.com/smith-xyz/autologger/pkg/instrument"
	"github.com/smith-xyz/autologger/pkg/settings"
)

// Host instruments one kind of input file.
type Host interface {
	Name() string
	Defaults() settings.Defaults
	// Instrument returns the rewritten content, or content itself when
	// nothing changed. The host sets the unit's Factory.
	Instrument(content []byte, u *instrument.Unit) ([]byte, error)
}

// GoHost instruments Go source files.
type GoHost struct{}

func (GoHost) Name() string { return "go" }

func (GoHost) Defaults() settings.Defaults { return gosrc.Defaults }

func (GoHost) Instrument(content []byte, u *instrument.Unit) ([]byte, error) {
	f, err := gosrc.Parse(u.Filename, content)
	if err != nil {
		return nil, err
	}
	u.Factory = f.Factory()

	if f.Instrument(u) == 0 && !u.Imported {
		return content, nil
	}
	return f.Render()
}

// ESTreeHost instruments JavaScript syntax trees saved as JSON.
type ESTreeHost struct{}

func (ESTreeHost) Name() string { return "estree" }

func (ESTreeHost) Defaults() settings.Defaults { return settings.JavaScript }

// Instrument matches the tree's own source filename against the settings
// when it records one, and the path without ASTSuffix otherwise.
func (ESTreeHost) Instrument(content []byte, u *instrument.Unit) ([]byte, error) {
	f, err := estree.Decode(content)
	if err != nil {
		return nil, err
	}
	u.Factory = f.Factory()

	if name := f.SourceFilename(); name != "" {
		u.Filename = name
	} else {
		u.Filename = strings.TrimSuffix(u.Filename, ASTSuffix)
	}
	u.Source = strings.TrimSuffix(u.Source, ASTSuffix)

	if f.Instrument(u) == 0 && !u.Imported {
		return content, nil
	}

	var buf bytes.Buffer
	if err := f.Encode(&buf, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
