package store

import (
        "bytes"
        "encoding/json"
        "fmt"
        "sort"
        "strconv"
        "strings"
        "time"

        "mmint-cli/internal/model"
        "mmint-cli/internal/pathutil"

        "go.uber.org/zap"
)

// legacyVersion is the version assigned to bare-list files.
const legacyVersion = 1

// Transform upgrades a raw document from one schema version to the next.
type Transform func(raw []byte) ([]byte, error)

// schemaTransforms maps a version to the transform that upgrades it.
var schemaTransforms = map[int]Transform{
        1: schema1To2,
}

// checkSchema applies transforms until none is registered for the document's
// version. Each step writes a backup of the pre-transform document first and
// persists the result as the canonical file afterwards.
func (s Store) checkSchema(raw []byte, transforms map[int]Transform) (*DB, error) {
        raw, err := wrapLegacyList(raw)
        if err != nil {
                return nil, err
        }

        version, err := readVersion(raw)
        if err != nil {
                return nil, err
        }

        for {
                t, ok := transforms[version]
                if !ok {
                        break
                }
                backup, err := s.writeBackup(raw)
                if err != nil {
                        return nil, err
                }
                s.logger().Info("migrating store",
                        zap.String("path", s.Path),
                        zap.Int("from", version),
                        zap.String("backup", backup))

                next, err := t(raw)
                if err != nil {
                        return nil, fmt.Errorf("migrate schema %d: %w", version, err)
                }
                if err := s.writeRaw(s.Path, next); err != nil {
                        return nil, &PersistenceError{Op: "write", Path: s.Path, Err: err}
                }

                nextVersion, err := readVersion(next)
                if err != nil {
                        return nil, err
                }
                if nextVersion == version {
                        return nil, fmt.Errorf("migrate schema %d: transform did not advance the version", version)
                }
                raw, version = next, nextVersion
        }

        if version != CurrentVersion {
                return nil, UnsupportedVersionError{Version: version}
        }

        var db DB
        if err := json.Unmarshal(raw, &db); err != nil {
                return nil, fmt.Errorf("decode store: %w", err)
        }
        // The file may carry the version as a string; the struct field is an int.
        db.Version = version
        db.normalize()
        return &db, nil
}

// wrapLegacyList turns a bare JSON list into a version-1 envelope.
func wrapLegacyList(raw []byte) ([]byte, error) {
        trimmed := bytes.TrimSpace(raw)
        if len(trimmed) == 0 || trimmed[0] != '[' {
                return raw, nil
        }
        var stack []any
        if err := json.Unmarshal(trimmed, &stack); err != nil {
                return nil, fmt.Errorf("decode legacy list: %w", err)
        }
        return json.Marshal(map[string]any{
                "_schema_version": strconv.Itoa(legacyVersion),
                "stack":           json.RawMessage(trimmed),
                "snoozed":         []any{},
        })
}

// readVersion accepts the version tag as a JSON number or string.
func readVersion(raw []byte) (int, error) {
        var head struct {
                Version json.RawMessage `json:"_schema_version"`
        }
        if err := json.Unmarshal(raw, &head); err != nil {
                return 0, fmt.Errorf("decode store header: %w", err)
        }
        v := strings.TrimSpace(string(head.Version))
        if v == "" || v == "null" {
                return 0, fmt.Errorf("store has no _schema_version")
        }
        if strings.HasPrefix(v, `"`) {
                var s string
                if err := json.Unmarshal(head.Version, &s); err != nil {
                        return 0, fmt.Errorf("decode _schema_version: %w", err)
                }
                v = strings.TrimSpace(s)
        }
        n, err := strconv.Atoi(v)
        if err != nil {
                return 0, fmt.Errorf("invalid _schema_version %q", v)
        }
        return n, nil
}

type legacyV1 struct {
        Stack   []any `json:"stack"`
        Snoozed []struct {
                Item  any         `json:"item"`
                TTime json.Number `json:"ttime"`
        } `json:"snoozed"`
}

// schema1To2 replaces the nested-list stack with an item table: lists become
// chunks, leaves become atoms, all rooted at "/".
func schema1To2(raw []byte) ([]byte, error) {
        dec := json.NewDecoder(bytes.NewReader(raw))
        dec.UseNumber()
        var old legacyV1
        if err := dec.Decode(&old); err != nil {
                return nil, err
        }

        db := New()
        var update func(v any) (string, error)
        update = func(v any) (string, error) {
                var it model.Item
                if list, ok := v.([]any); ok {
                        children := make([]string, 0, len(list))
                        for _, child := range list {
                                id, err := update(child)
                                if err != nil {
                                        return "", err
                                }
                                children = append(children, id)
                        }
                        it = model.NewChunk(children, pathutil.Root)
                } else {
                        it = model.NewAtom(legacyLeafText(v), pathutil.Root)
                }
                id, err := db.NewItemID()
                if err != nil {
                        return "", err
                }
                db.Items[id] = it
                return id, nil
        }

        for _, v := range old.Stack {
                id, err := update(v)
                if err != nil {
                        return nil, err
                }
                db.Stack = append(db.Stack, id)
        }
        for _, sn := range old.Snoozed {
                id, err := update(sn.Item)
                if err != nil {
                        return nil, err
                }
                wake, err := legacyUnix(sn.TTime)
                if err != nil {
                        return nil, err
                }
                db.Snoozed = append(db.Snoozed, model.Snooze{Ref: id, Wake: wake})
        }
        sort.SliceStable(db.Snoozed, func(i, j int) bool {
                return db.Snoozed[i].Wake.Before(db.Snoozed[j].Wake)
        })

        return json.Marshal(db)
}

func legacyLeafText(v any) string {
        switch x := v.(type) {
        case nil:
                return ""
        case string:
                return x
        case json.Number:
                return x.String()
        default:
                b, err := json.Marshal(x)
                if err != nil {
                        return fmt.Sprint(x)
                }
                return string(b)
        }
}

func legacyUnix(n json.Number) (time.Time, error) {
        if n == "" {
                return time.Unix(0, 0).UTC(), nil
        }
        if i, err := n.Int64(); err == nil {
                return time.Unix(i, 0).UTC(), nil
        }
        f, err := n.Float64()
        if err != nil {
                return time.Time{}, fmt.Errorf("invalid snooze time %q", n)
        }
        return time.Unix(int64(f), 0).UTC(), nil
}
