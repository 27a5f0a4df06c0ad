package amrconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/amr/configs"
	"github.com/reusee/amr/logs"
	"github.com/reusee/amr/modes"
)

//go:embed schema.cue
var schema string

// ConfigsLoader discovers amr.cue config files. Development mode reads the
// working directory only, so tests stay hermetic.
func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	filenames := []string{
		"amr.cue",
		".amr.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	if mode != modes.ModeProduction {
		return configs.NewLoader(paths, schema)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return configs.NewLoader(paths, schema)
}
