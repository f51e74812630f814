// Package storage records every file c2f writes so earlier saves can be
// listed again.
package storage

import (
	"time"

	"github.com/berrythewa/c2f/internal/types"
	"github.com/berrythewa/c2f/pkg/utils"
)

// Record describes one completed save. The content itself is not kept.
type Record struct {
	ID       string            `json:"id"`
	Filename string            `json:"filename"`
	Type     types.ContentType `json:"type"`
	Size     int               `json:"size"`
	Hash     string            `json:"hash"`
	Appended bool              `json:"appended"`
	Created  time.Time         `json:"created"`
}

// NewRecord builds the record for writing content to filename
func NewRecord(filename string, content *types.ClipboardContent, appended bool) *Record {
	return &Record{
		ID:       utils.NewID(),
		Filename: filename,
		Type:     content.Type,
		Size:     len(content.Data),
		Hash:     utils.HashContent(content.Data),
		Appended: appended,
		Created:  time.Now(),
	}
}

// HistoryOptions filters GetHistory
type HistoryOptions struct {
	Limit   int               // 0 means no limit
	Since   time.Time         // zero means no lower bound
	Type    types.ContentType // empty means any type
	Reverse bool              // oldest first
}

func (o HistoryOptions) matches(r *Record) bool {
	if !o.Since.IsZero() && r.Created.Before(o.Since) {
		return false
	}
	if o.Type != "" && r.Type != o.Type {
		return false
	}
	return true
}

// Storage is the history store used by the CLI
type Storage interface {
	SaveRecord(record *Record) error
	GetHistory(options HistoryOptions) ([]*Record, error)
	Clear() (int, error)
	Close() error
}

var _ Storage = (*BoltStorage)(nil)
