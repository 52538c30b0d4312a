package timeline

import (
	"os"

	"gopkg.in/yaml.v3"
)

// WriteTimeline сохраняет профиль таймингов в YAML-файл.
func WriteTimeline(tl Timeline, path string) error {
	data, err := yaml.Marshal(tl)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadTimeline читает профиль таймингов из YAML-файла.
func ReadTimeline(path string) (Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Timeline{}, err
	}

	tl := Default()
	if err := yaml.Unmarshal(data, &tl); err != nil {
		return Timeline{}, err
	}
	if err := tl.Validate(); err != nil {
		return Timeline{}, err
	}

	return tl, nil
}
