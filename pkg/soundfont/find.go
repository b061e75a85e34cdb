package soundfont

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/exvacuum/ebiten-meltysynth/pkg/fileutil"
)

// DefaultName is the SoundFont filename Find searches for.
const DefaultName = "GeneralUser-GS.sf2"

// embeddedDir is the directory inside an embedded file system that Find
// checks first.
const embeddedDir = "soundfonts"

// Location describes where a discovered SoundFont lives.
type Location struct {
	// Path to the SoundFont file, relative to FileSystem when set.
	Path string
	// FileSystem to load through, nil for the OS file system.
	FileSystem fileutil.FileSystem
	// IsEmbedded indicates the SoundFont ships inside the binary.
	IsEmbedded bool
}

// Source converts the location into a Config source.
func (l *Location) Source() Source {
	return Source{Path: l.Path, FS: l.FileSystem}
}

// Find searches for the default SoundFont in priority order:
//
//  1. the "soundfonts" directory of the embedded file system (if any)
//  2. the current directory
//  3. each of the extra directories, in order
//
// It returns nil when no SoundFont is found.
func Find(embedded fs.FS, extraDirs ...string) *Location {
	if embedded != nil {
		path := embeddedDir + "/" + DefaultName
		if data, err := fs.ReadFile(embedded, path); err == nil && len(data) > 0 {
			return &Location{
				Path:       DefaultName,
				FileSystem: fileutil.NewEmbedFS(embedded, embeddedDir),
				IsEmbedded: true,
			}
		}
	}

	if _, err := os.Stat(DefaultName); err == nil {
		return &Location{Path: DefaultName}
	}

	for _, dir := range extraDirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, DefaultName)
		if _, err := os.Stat(path); err == nil {
			return &Location{Path: path}
		}
	}

	return nil
}
