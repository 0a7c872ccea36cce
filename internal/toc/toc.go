package toc

import (
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/dgallion1/docbro/internal/doctree"
)

// PageExt is the extension of generated pages.
const PageExt = ".html"

// Build walks root inside fsys and returns the tree of generated pages.
// Children are sorted by name with pages before subdirectories.
// Directories with no pages beneath them are dropped, so an empty mirrored
// source directory gets no heading in the index even though it exists on
// disk.
func Build(fsys fs.FS, root string) (*doctree.Entry, error) {
	rootEntry := &doctree.Entry{Path: "", Name: path.Base(root), Kind: doctree.KindDirectory}
	if err := walkDir(fsys, root, rootEntry); err != nil {
		return nil, err
	}
	return rootEntry, nil
}

// walkDir fills dir with the pages and non-empty subdirectories under
// fsPath.
func walkDir(fsys fs.FS, fsPath string, dir *doctree.Entry) error {
	entries, err := fs.ReadDir(fsys, fsPath)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", fsPath, err)
	}

	var pages, subdirs []*doctree.Entry
	for _, e := range entries {
		rel := path.Join(dir.Path, e.Name())
		if e.IsDir() {
			sub := &doctree.Entry{Path: rel, Name: e.Name(), Kind: doctree.KindDirectory}
			if err := walkDir(fsys, path.Join(fsPath, e.Name()), sub); err != nil {
				return err
			}
			if len(sub.Children) > 0 {
				subdirs = append(subdirs, sub)
			}
			continue
		}
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), PageExt) {
			pages = append(pages, &doctree.Entry{Path: rel, Name: e.Name(), Kind: doctree.KindPage})
		}
	}
	dir.Children = append(pages, subdirs...)
	return nil
}

// Lines renders the tree as Markdown. Each directory below the root becomes
// a heading nested by depth, each page a link to linkPrefix/<path>.
func Lines(root *doctree.Entry, linkPrefix string) []string {
	var out []string
	appendLines(&out, root, 0, strings.TrimSuffix(linkPrefix, "/"))
	return out
}

func appendLines(out *[]string, dir *doctree.Entry, depth int, prefix string) {
	if depth > 0 {
		level := min(2+depth, 6)
		*out = append(*out, fmt.Sprintf("%s 📁 %s/", strings.Repeat("#", level), dir.Name))
	}
	for _, c := range dir.Children {
		if c.IsDir() {
			appendLines(out, c, depth+1, prefix)
			continue
		}
		*out = append(*out, fmt.Sprintf("- [📄 %s](%s)", DisplayName(c.Name), link(prefix, c.Path)))
	}
}

// Generate builds the tree under root and renders it.
func Generate(fsys fs.FS, root, linkPrefix string) ([]string, error) {
	tree, err := Build(fsys, root)
	if err != nil {
		return nil, err
	}
	return Lines(tree, linkPrefix), nil
}

// Pages returns the paths of every page in the tree, depth first.
func Pages(root *doctree.Entry) []string {
	var out []string
	var walk func(*doctree.Entry)
	walk = func(e *doctree.Entry) {
		if !e.IsDir() {
			out = append(out, e.Path)
			return
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// DisplayName strips the page extension, so "main.py.html" shows as "main.py".
func DisplayName(name string) string {
	return strings.TrimSuffix(name, PageExt)
}

func link(prefix, rel string) string {
	segs := strings.Split(rel, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	escaped := strings.Join(segs, "/")
	if prefix == "" {
		return escaped
	}
	return prefix + "/" + escaped
}
