package store

import (
        "crypto/rand"
        "encoding/base32"
        "errors"
        "strings"
)

const itemIDPrefix = "mm"

// newRandomID returns prefix + 16 chars of lowercase base32 (80 bits).
func newRandomID(prefix string) (string, error) {
        var b [10]byte
        if _, err := rand.Read(b[:]); err != nil {
                return "", err
        }
        enc := base32.StdEncoding.WithPadding(base32.NoPadding)
        return prefix + strings.ToLower(enc.EncodeToString(b[:])), nil
}

// NewItemID returns an id not yet present in db.Items.
func (db *DB) NewItemID() (string, error) {
        for attempt := 0; attempt < 8; attempt++ {
                id, err := newRandomID(itemIDPrefix)
                if err != nil {
                        return "", err
                }
                if _, taken := db.Items[id]; !taken {
                        return id, nil
                }
        }
        return "", errors.New("could not allocate a unique item id")
}
