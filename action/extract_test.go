package action

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path"
	"testing"
)

type tarEntry struct {
	name     string
	typeflag byte
	content  string
	linkname string
}

func writeArchive(t *testing.T, entries []tarEntry) string {
	t.Helper()

	var buf bytes.Buffer
	gzWriter := gzip.NewWriter(&buf)
	tarWriter := tar.NewWriter(gzWriter)

	for _, entry := range entries {
		header := &tar.Header{
			Name:     entry.name,
			Typeflag: entry.typeflag,
			Mode:     0755,
			Size:     int64(len(entry.content)),
			Linkname: entry.linkname,
		}
		if err := tarWriter.WriteHeader(header); err != nil {
			t.Fatal(err)
		}
		if entry.typeflag == tar.TypeReg {
			if _, err := tarWriter.Write([]byte(entry.content)); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := tarWriter.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gzWriter.Close(); err != nil {
		t.Fatal(err)
	}

	archive := path.Join(t.TempDir(), "release.tar.gz")
	if err := os.WriteFile(archive, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return archive
}

func TestExtractStripsRootDirectory(t *testing.T) {
	archive := writeArchive(t, []tarEntry{
		{name: "basemap-1.2.2", typeflag: tar.TypeDir},
		{name: "basemap-1.2.2/setup.py", typeflag: tar.TypeReg, content: "print('hi')"},
		{name: "basemap-1.2.2/geos-3.3.3", typeflag: tar.TypeDir},
		{name: "basemap-1.2.2/geos-3.3.3/configure", typeflag: tar.TypeReg, content: "#!/bin/sh"},
	})

	dest := path.Join(t.TempDir(), "basemap-1.2.2")
	extract := Extract{Archive: archive, Dest: dest}
	if err := extract.Run(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	content, err := os.ReadFile(path.Join(dest, "setup.py"))
	if err != nil {
		t.Fatalf("setup.py missing after extraction: %s", err)
	}
	if string(content) != "print('hi')" {
		t.Fatalf("unexpected content: %s", content)
	}
	if _, err := os.Stat(path.Join(dest, "geos-3.3.3", "configure")); err != nil {
		t.Fatalf("nested file missing after extraction: %s", err)
	}
}

func TestExtractFilesBeforeDirectory(t *testing.T) {
	// The file is visited before its containing directory.
	archive := writeArchive(t, []tarEntry{
		{name: "root", typeflag: tar.TypeDir},
		{name: "root/sub/file.txt", typeflag: tar.TypeReg, content: "data"},
		{name: "root/sub", typeflag: tar.TypeDir},
	})

	dest := path.Join(t.TempDir(), "out")
	extract := Extract{Archive: archive, Dest: dest}
	if err := extract.Run(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := os.Stat(path.Join(dest, "sub", "file.txt")); err != nil {
		t.Fatalf("file missing after extraction: %s", err)
	}
}

func TestExtractSymlink(t *testing.T) {
	archive := writeArchive(t, []tarEntry{
		{name: "root", typeflag: tar.TypeDir},
		{name: "root/lib.so.1", typeflag: tar.TypeReg, content: "elf"},
		{name: "root/lib.so", typeflag: tar.TypeSymlink, linkname: "lib.so.1"},
	})

	dest := path.Join(t.TempDir(), "out")
	extract := Extract{Archive: archive, Dest: dest}
	if err := extract.Run(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	target, err := os.Readlink(path.Join(dest, "lib.so"))
	if err != nil {
		t.Fatalf("symlink missing after extraction: %s", err)
	}
	if target != "lib.so.1" {
		t.Fatalf("unexpected symlink target: %s", target)
	}
}

func TestExtractRejectsMultipleRoots(t *testing.T) {
	archive := writeArchive(t, []tarEntry{
		{name: "first", typeflag: tar.TypeDir},
		{name: "first/a.txt", typeflag: tar.TypeReg, content: "a"},
		{name: "second", typeflag: tar.TypeDir},
		{name: "second/b.txt", typeflag: tar.TypeReg, content: "b"},
	})

	extract := Extract{Archive: archive, Dest: path.Join(t.TempDir(), "out")}
	if err := extract.Run(); err == nil {
		t.Fatal("expected an error for an archive with two root directories")
	}
}

func TestExtractRejectsFileOutsideRoot(t *testing.T) {
	archive := writeArchive(t, []tarEntry{
		{name: "loose.txt", typeflag: tar.TypeReg, content: "nope"},
	})

	extract := Extract{Archive: archive, Dest: path.Join(t.TempDir(), "out")}
	if err := extract.Run(); err == nil {
		t.Fatal("expected an error for a file outside the root directory")
	}
}

func TestExtractMissingArchive(t *testing.T) {
	extract := Extract{Archive: path.Join(t.TempDir(), "missing.tar.gz"), Dest: t.TempDir()}
	if err := extract.Run(); err == nil {
		t.Fatal("expected an error for a missing archive")
	}
}
