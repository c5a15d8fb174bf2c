package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates the dataset and config files relative to the
// running binary, the working directory and the user's config dir.
type PathResolver struct {
	executableDir string
	workingDir    string
	configDir     string
}

// NewPathResolver creates a resolver for the current process. Missing
// pieces (no executable path, no home) degrade to the working directory.
func NewPathResolver(appName string) (*PathResolver, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	execDir := cwd
	if execPath, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
			execPath = resolved
		}
		execDir = filepath.Dir(execPath)
	} else {
		log.Warnf("Could not determine executable path: %v", err)
	}

	return newPathResolver(execDir, cwd, getConfigDir(appName)), nil
}

func newPathResolver(execDir, workingDir, configDir string) *PathResolver {
	pr := &PathResolver{
		executableDir: execDir,
		workingDir:    workingDir,
		configDir:     configDir,
	}
	log.Debugf("PathResolver initialized: execDir=%s, cwd=%s, configDir=%s",
		execDir, workingDir, configDir)
	return pr
}

// getConfigDir returns the platform config directory for appName, or ""
// when none can be determined.
func getConfigDir(appName string) string {
	if runtime.GOOS == "darwin" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config", appName)
		}
	}
	base, err := os.UserConfigDir()
	if err != nil {
		log.Debugf("No user config dir: %v", err)
		return ""
	}
	return filepath.Join(base, appName)
}

// GetDatasetPath resolves dataDir/fileName. Absolute dirs are used as is;
// relative dirs are tried next to the executable first, then under the
// working directory. When nothing exists the executable-relative path is
// returned so the loader can report it.
func (pr *PathResolver) GetDatasetPath(dataDir, fileName string) string {
	if filepath.IsAbs(dataDir) {
		return filepath.Join(dataDir, fileName)
	}

	candidates := []string{
		filepath.Join(pr.executableDir, dataDir, fileName),
		filepath.Join(pr.workingDir, dataDir, fileName),
	}
	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found dataset: %s", path)
			return path
		}
		log.Debugf("Dataset candidate not found: %s", path)
	}
	return candidates[0]
}

// GetConfigPath returns the config file path inside the user's config dir,
// or "" when there is no such dir. The file itself may not exist.
func (pr *PathResolver) GetConfigPath(fileName string) string {
	if pr.configDir == "" {
		return ""
	}
	return filepath.Join(pr.configDir, fileName)
}
