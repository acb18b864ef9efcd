package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultProductsDir is where the NI installer drops one JSON descriptor
// per installed product.
const DefaultProductsDir = "/Users/Shared/Native Instruments/installed_products"

// DataPaths locates the four stores under one data directory: the two
// curated inputs and the two engine-owned outputs.
type DataPaths struct {
	TagDatabase string
	IgnoreList  string
	Index       string
	Recents     string
}

func ResolveDataPaths(dir string) DataPaths {
	return DataPaths{
		TagDatabase: filepath.Join(dir, "tags_database.yaml"),
		IgnoreList:  filepath.Join(dir, "ignore_list.yaml"),
		Index:       filepath.Join(dir, "expansions.yaml"),
		Recents:     filepath.Join(dir, "recents.yaml"),
	}
}

func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "nidr")
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}
