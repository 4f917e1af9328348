package store

import (
        "fmt"
        "os"
        "path/filepath"
        "sort"
        "strings"
)

// writeBackup stores raw next to Path as <Path>.bak<unix-seconds>. A second
// backup within the same second gets a -N suffix instead of overwriting.
func (s Store) writeBackup(raw []byte) (string, error) {
        base := fmt.Sprintf("%s.bak%d", s.Path, s.now().Unix())
        path := base
        for n := 1; fileExists(path); n++ {
                path = fmt.Sprintf("%s-%d", base, n)
        }
        if err := s.writeRaw(path, raw); err != nil {
                return "", &PersistenceError{Op: "backup", Path: path, Err: err}
        }
        return path, nil
}

// Backups lists the migration backups written for Path, oldest first.
func (s Store) Backups() ([]string, error) {
        dir := filepath.Dir(s.Path)
        prefix := filepath.Base(s.Path) + ".bak"
        ents, err := os.ReadDir(dir)
        if err != nil {
                if os.IsNotExist(err) {
                        return []string{}, nil
                }
                return nil, err
        }
        out := []string{}
        for _, e := range ents {
                if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) || strings.HasSuffix(e.Name(), ".tmp") {
                        continue
                }
                out = append(out, filepath.Join(dir, e.Name()))
        }
        sort.Strings(out)
        return out, nil
}
