package action

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/cartolab/mapstrap/log"
	"github.com/cartolab/mapstrap/util"
)

const defaultDirMode = 0770

// Extract unpacks a tar.gz archive into Dest, stripping the single leading
// path component all release tarballs wrap their content in.
type Extract struct {
	Archive string
	Dest    string
}

// Describe returns a short human-readable summary of the action.
func (a *Extract) Describe() string {
	return fmt.Sprintf("extract '%s'", path.Base(a.Archive))
}

func getRoot(p string) string {
	firstSlash := strings.IndexByte(p, '/')
	if firstSlash == -1 {
		return p
	}
	return p[0:firstSlash]
}

// This leaves a leading /, but this is fine because the result paths are relative to Dest.
func stripRoot(p string) string {
	root := getRoot(p)
	if p == root {
		return "/"
	}
	return p[len(root):]
}

// Run extracts the archive.
func (a *Extract) Run() error {
	log.Log("Extracting '%s'.\n", a.Archive)

	gzFile, err := os.Open(a.Archive)
	if err != nil {
		return fmt.Errorf("failed to open archive: %s", err)
	}
	defer gzFile.Close()

	tarFile, err := gzip.NewReader(gzFile)
	if err != nil {
		return fmt.Errorf("failed to decompress: %s", err)
	}

	tarReader := tar.NewReader(tarFile)
	tarRootDir := ""
	for {
		header, err := tarReader.Next()

		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to decompress: %s", err)
		}

		headerRootDir := getRoot(header.Name)
		if header.Typeflag != tar.TypeDir && headerRootDir == header.Name {
			return fmt.Errorf("failed to decompress: archive can't have files outside root directory")
		}
		if tarRootDir == "" {
			tarRootDir = headerRootDir
		} else if tarRootDir != headerRootDir {
			return fmt.Errorf("failed to decompress: archive can't have more than one root directory")
		}

		// The tar reader does not necessarily visit a dir before the files inside it.
		// If we find a file whose dir hasn't been created yet, we make it with a
		// sensible default access mode. When the dir is eventually visited, we set
		// the correct mode.
		switch header.Typeflag {
		case tar.TypeDir:
			dirPath := path.Join(a.Dest, stripRoot(header.Name))
			log.Debug("Creating directory '%s'.\n", dirPath)
			if err := os.MkdirAll(dirPath, os.FileMode(header.Mode)); err != nil {
				return fmt.Errorf("failed to create directory: %s", err)
			}
			// We need this again because if the dir already existed os.MkdirAll does nothing.
			if err := os.Chmod(dirPath, os.FileMode(header.Mode)); err != nil {
				return fmt.Errorf("failed to change filemode: %s", err)
			}
		case tar.TypeReg:
			filePath := path.Join(a.Dest, stripRoot(header.Name))
			if err := os.MkdirAll(path.Dir(filePath), defaultDirMode); err != nil {
				return fmt.Errorf("failed to create directory: %s", err)
			}
			log.Debug("Creating file '%s'.\n", filePath)
			file, err := os.Create(filePath)
			if err != nil {
				return fmt.Errorf("failed to create file: %s", err)
			}
			_, err = io.Copy(file, tarReader)
			file.Close()
			if err != nil {
				return fmt.Errorf("failed to write file: %s", err)
			}
			if err := os.Chmod(filePath, os.FileMode(header.Mode)); err != nil {
				return fmt.Errorf("failed to change filemode: %s", err)
			}
		case tar.TypeLink:
			if getRoot(header.Linkname) != tarRootDir {
				return fmt.Errorf("failed to decompress: archive can't have more than one root directory")
			}
			oldname := path.Join(a.Dest, stripRoot(header.Linkname))
			newname := path.Join(a.Dest, stripRoot(header.Name))
			if err := os.MkdirAll(path.Dir(newname), defaultDirMode); err != nil {
				return fmt.Errorf("failed to create directory: %s", err)
			}
			log.Debug("Creating link from '%s' to '%s'.\n", newname, oldname)
			if err := os.Link(oldname, newname); err != nil {
				return fmt.Errorf("failed to create link: %s", err)
			}
		case tar.TypeSymlink:
			newname := path.Join(a.Dest, stripRoot(header.Name))
			if err := os.MkdirAll(path.Dir(newname), defaultDirMode); err != nil {
				return fmt.Errorf("failed to create directory: %s", err)
			}
			log.Debug("Creating symlink from '%s' to '%s'.\n", newname, header.Linkname)
			if err := os.Symlink(header.Linkname, newname); err != nil {
				return fmt.Errorf("failed to create symlink: %s", err)
			}

		default:
			return fmt.Errorf("unknown tar type flag %d for entry '%s'", header.Typeflag, header.Name)
		}
	}

	if !util.DirExists(a.Dest) {
		return fmt.Errorf("failed to decompress: archive is empty")
	}
	return nil
}
