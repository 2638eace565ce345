package theme

import (
	"encoding/json"

	apierrors "git.home.luguber.info/inful/apidocs/internal/errors"
)

// Declaration mirrors one theme.json file. Glob patterns are relative to
// the declaring theme's own directory.
type Declaration struct {
	Base       string                   `json:"base,omitempty"`
	Metadata   map[string]string        `json:"metadata,omitempty"`
	Templates  []string                 `json:"templates,omitempty"`
	Scripts    FileSet                  `json:"scripts,omitempty"`
	Styles     FileSet                  `json:"styles,omitempty"`
	Assets     []string                 `json:"assets,omitempty"`
	Parameters map[string]ParameterDecl `json:"parameters,omitempty"`
}

// FileSet declares source globs concatenating into one output target path.
type FileSet struct {
	Source     []string `json:"source,omitempty"`
	TargetPath string   `json:"targetPath,omitempty"`
}

// ParameterDecl is the on-disk shape of a parameter declaration.
type ParameterDecl struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"defaultValue,omitempty"`
}

// ParseDeclaration parses and validates a theme.json document. All detected
// violations are reported together in one ValidationErrors.
func ParseDeclaration(data []byte, subject string) (*Declaration, error) {
	var decl Declaration
	if err := json.Unmarshal(data, &decl); err != nil {
		return nil, apierrors.Wrap(err, apierrors.CategoryTheme, apierrors.SeverityFatal,
			"malformed theme declaration "+subject)
	}
	if err := decl.validate(subject); err != nil {
		return nil, err
	}
	return &decl, nil
}

func (d *Declaration) validate(subject string) error {
	violations := apierrors.NewValidationErrors(subject)

	validateFileSet := func(field string, fs FileSet) {
		if len(fs.Source) > 0 && fs.TargetPath == "" {
			violations.Add(field+".targetPath", "required when source globs are declared")
		}
		if fs.TargetPath != "" && len(fs.Source) == 0 {
			violations.Add(field+".source", "target path declared without source globs")
		}
		for _, src := range fs.Source {
			if src == "" {
				violations.Add(field+".source", "empty glob pattern")
			}
		}
	}
	validateFileSet("scripts", d.Scripts)
	validateFileSet("styles", d.Styles)

	for _, pat := range d.Templates {
		if pat == "" {
			violations.Add("templates", "empty glob pattern")
		}
	}
	for _, pat := range d.Assets {
		if pat == "" {
			violations.Add("assets", "empty glob pattern")
		}
	}

	for name, p := range d.Parameters {
		if name == "" {
			violations.Add("parameters", "parameter with empty name")
			continue
		}
		if _, err := ParseParameterType(p.Type); err != nil {
			violations.Addf("parameters."+name, "unknown type %q", p.Type)
		}
	}

	if violations.Empty() {
		return nil
	}
	return violations
}
