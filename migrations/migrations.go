// Package migrations хранит SQL-схему, встроенную в бинарник.
package migrations

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.sql
var files embed.FS

// Up возвращает up-миграции в порядке применения.
func Up() ([]string, error) {
	names, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	scripts := make([]string, 0, len(names))
	for _, name := range names {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, strings.TrimSpace(string(data)))
	}
	return scripts, nil
}
