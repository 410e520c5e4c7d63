package util

import (
	"io/ioutil"
	"os"
	"path"

	"github.com/cartolab/mapstrap/log"

	"gopkg.in/yaml.v2"
)

// FileMode is the default FileMode used when creating files.
const FileMode = 0664

// DirMode is the default FileMode used when creating directories.
const DirMode = 0775

// FileExists checks whether some file exists.
func FileExists(file string) bool {
	stat, err := os.Stat(file)
	return err == nil && !stat.IsDir()
}

// DirExists checks whether some directory exists.
func DirExists(dir string) bool {
	stat, err := os.Stat(dir)
	return err == nil && stat.IsDir()
}

// PathExists checks whether some path exists, regardless of whether it is a file or a directory.
func PathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// MkdirAll creates the directory `dir` and all required parent directories.
func MkdirAll(dir string) {
	if err := os.MkdirAll(dir, DirMode); err != nil {
		log.Fatal("Failed to create directory '%s': %s.\n", dir, err)
	}
}

// RemoveDir removes the directory `dir` and all files contained in it.
func RemoveDir(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		log.Fatal("Failed to remove directory '%s': %s.\n", dir, err)
	}
}

// ReadFile reads the content of file `filePath`.
func ReadFile(filePath string) []byte {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		log.Fatal("Failed to read file '%s': %s.\n", filePath, err)
	}
	return data
}

// WriteFile writes `data` to file `filePath` and creates any missing parent directories.
func WriteFile(filePath string, data []byte) {
	MkdirAll(path.Dir(filePath))
	if err := ioutil.WriteFile(filePath, data, FileMode); err != nil {
		log.Fatal("Failed to write file '%s': %s.\n", filePath, err)
	}
}

// ReadYaml reads and unmarshals the YAML file `filePath` into `v`.
func ReadYaml(filePath string, v interface{}) {
	if err := yaml.Unmarshal(ReadFile(filePath), v); err != nil {
		log.Fatal("Failed to parse YAML file '%s': %s.\n", filePath, err)
	}
}

// WriteYaml marshals `v` and writes it to the YAML file `filePath`.
func WriteYaml(filePath string, v interface{}) {
	data, err := yaml.Marshal(v)
	if err != nil {
		log.Fatal("Failed to marshal data for YAML file '%s': %s.\n", filePath, err)
	}
	WriteFile(filePath, data)
}
