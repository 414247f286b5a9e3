// Package metadata signs exported documents and fingerprints dataset content.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// TagStart is the start of the metadata block.
	TagStart = "<!-- METADATA_START"
	// TagEnd is the end of the metadata block.
	TagEnd = "METADATA_END -->"

	fingerprintLen = 16
)

// Metadata verification errors.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata describes a signed export.
type Metadata struct {
	LastModify time.Time
	Version    string
	Hash       string
	Validation bool
}

// metadataRegex matches the entire metadata block including tags.
var metadataRegex = regexp.MustCompile(`(?s)<!--\s*METADATA_START\s*\n(.*?)\n\s*METADATA_END\s*-->`)

// Extract removes the metadata block from content and returns both the metadata and the
// cleaned content. The cleaned content is what gets hashed.
func Extract(content string) (*Metadata, string) {
	match := metadataRegex.FindStringSubmatch(content)
	cleanContent := metadataRegex.ReplaceAllString(content, "")
	cleanContent = strings.TrimRight(cleanContent, "\n")

	if len(match) < 2 {
		return nil, cleanContent
	}

	meta := &Metadata{}

	for line := range strings.SplitSeq(match[1], "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		switch key {
		case "VALIDATION":
			meta.Validation = strings.EqualFold(val, "TRUE")
		case "LAST_MODIFY":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.LastModify = t
			}
		case "HASH":
			meta.Hash = val
		case "VERSION":
			meta.Version = val
		}
	}

	return meta, cleanContent
}

// CalculateHash computes the SHA-256 hash of the content without its metadata block.
func CalculateHash(content string) string {
	_, clean := Extract(content)
	hash := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(hash[:])
}

// Sign replaces any metadata block with a fresh one. version is usually the
// fingerprint of the directory the document was exported from; it is omitted when empty.
func Sign(content string, validated bool, version string) string {
	_, clean := Extract(content)
	hash := CalculateHash(clean)
	now := time.Now().UTC().Format(time.RFC3339)

	valStr := "FALSE"
	if validated {
		valStr = "TRUE"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "\n\n%s\n", TagStart)

	if version != "" {
		fmt.Fprintf(&b, "VERSION: %s\n", version)
	}

	fmt.Fprintf(&b, "VALIDATION: %s\nLAST_MODIFY: %s\nHASH: %s\n%s", valStr, now, hash, TagEnd)

	return clean + b.String()
}

// Verify checks that content matches the hash in its metadata block.
func Verify(content string) (bool, error) {
	meta, clean := Extract(content)
	if meta == nil {
		return false, ErrNoMetadataBlock
	}

	if meta.Hash == "" {
		return false, ErrNoHashFound
	}

	calculated := CalculateHash(clean)
	if calculated != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return true, nil
}

// Fingerprint returns a short, stable content version for data.
func Fingerprint(data []byte) string {
	hash := sha256.Sum256(data)

	return hex.EncodeToString(hash[:])[:fingerprintLen]
}
