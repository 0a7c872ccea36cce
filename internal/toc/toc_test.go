package toc

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/dgallion1/docbro/internal/doctree"
)

func sampleFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":                  {Data: []byte("root index")},
		"Proj/a.py.html":              {Data: []byte("a")},
		"Proj/my file.py.html":        {Data: []byte("spaces")},
		"Proj/notes.txt":              {Data: []byte("not a page")},
		"Proj/empty":                  {Mode: fs.ModeDir},
		"Proj/sub/b.py.html":          {Data: []byte("b")},
		"Proj/sub/deeper/c.go.html":   {Data: []byte("c")},
		"Proj/sub/deeper/nothing.txt": {Data: []byte("x")},
	}
}

func TestGenerate_Lines(t *testing.T) {
	lines, err := Generate(sampleFS(), "Proj", "Proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"- [📄 a.py](Proj/a.py.html)",
		"- [📄 my file.py](Proj/my%20file.py.html)",
		"### 📁 sub/",
		"- [📄 b.py](Proj/sub/b.py.html)",
		"#### 📁 deeper/",
		"- [📄 c.go](Proj/sub/deeper/c.go.html)",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("unexpected toc:\n--- got ---\n%s\n--- want ---\n%s",
			strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestBuild_PrunesEmptyDirectories(t *testing.T) {
	tree, err := Build(sampleFS(), "Proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range tree.Children {
		if c.Name == "empty" {
			t.Error("expected empty directory to be pruned")
		}
	}
	if tree.Kind != doctree.KindDirectory {
		t.Errorf("expected root kind %q, got %q", doctree.KindDirectory, tree.Kind)
	}
}

func TestGenerate_EveryPageOnceAcrossRuns(t *testing.T) {
	fsys := sampleFS()
	for run := 0; run < 2; run++ {
		tree, err := Build(fsys, "Proj")
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", run, err)
		}
		pages := Pages(tree)
		want := map[string]bool{
			"a.py.html":            true,
			"my file.py.html":      true,
			"sub/b.py.html":        true,
			"sub/deeper/c.go.html": true,
		}
		if len(pages) != len(want) {
			t.Fatalf("run %d: expected %d pages, got %d: %v", run, len(want), len(pages), pages)
		}
		seen := map[string]bool{}
		for _, p := range pages {
			if !want[p] {
				t.Errorf("run %d: unexpected page %q", run, p)
			}
			if seen[p] {
				t.Errorf("run %d: page %q listed twice", run, p)
			}
			seen[p] = true
		}
	}
}

func TestGenerate_DeepNestingCapsHeadingLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"r/a/b/c/d/e/page.html": {Data: []byte("x")},
	}
	lines, err := Generate(fsys, "r", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"### 📁 a/",
		"#### 📁 b/",
		"##### 📁 c/",
		"###### 📁 d/",
		"###### 📁 e/",
		"- [📄 page](a/b/c/d/e/page.html)",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("unexpected toc: %q", lines)
	}
}

func TestGenerate_MissingRoot(t *testing.T) {
	if _, err := Generate(fstest.MapFS{}, "nope", ""); err == nil {
		t.Error("expected error for missing root")
	}
}
