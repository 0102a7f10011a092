package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentLog records one successfully routed document. LookupKey is the
// filename for specific-name documents or the content-hash hex for
// generic-name documents.
type DocumentLog struct {
	ID            uuid.UUID `json:"id"`
	LookupKey     string    `json:"lookup_key"`
	Filename      string    `json:"filename"`
	DocumentType  string    `json:"document_type"`
	ContentHash   *string   `json:"content_hash,omitempty"`
	HashAlgo      *string   `json:"hash_algo,omitempty"`
	HashPrefixLen *int      `json:"hash_prefix_len,omitempty"`
	ProcessedAt   time.Time `json:"processed_at"`
}
