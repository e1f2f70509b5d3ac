package fileingest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"titleguard/internal/util"
)

// TitleFile is one list of titles discovered for batch classification.
type TitleFile struct {
	Path   string
	Titles []string
}

/*
DiscoverTitleFiles resolves a file or directory into title lists.

A file is read as-is. A directory is walked recursively and every .txt
file in it is read, in lexical path order. Binary files are skipped.
*/
func DiscoverTitleFiles(ctx context.Context, root string) ([]TitleFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		titles, err := util.ReadLines(root)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", root, err)
		}
		return []TitleFile{{Path: root, Titles: titles}}, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".txt") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var files []TitleFile
	for _, p := range paths {
		if binary, err := util.IsLikelyBinary(p); err != nil || binary {
			continue
		}
		titles, err := util.ReadLines(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		files = append(files, TitleFile{Path: p, Titles: titles})
	}
	return files, nil
}

// AllTitles flattens the discovered files in order.
func AllTitles(files []TitleFile) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.Titles...)
	}
	return out
}
