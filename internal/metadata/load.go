package metadata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/apidocs/internal/errors"
)

// Load reads an extracted API model from a YAML file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryMetadata, errors.SeverityFatal,
			fmt.Sprintf("failed to read API model %s", path))
	}

	var model Model
	if err := yaml.Unmarshal(data, &model); err != nil {
		return nil, errors.Wrap(err, errors.CategoryMetadata, errors.SeverityFatal,
			fmt.Sprintf("failed to parse API model %s", path))
	}
	return &model, nil
}
