package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/B4-art/chatapp/domain"
	"github.com/B4-art/chatapp/internal"
)

// storedMessage mirrors the feed provider's on-disk document shape.
type storedMessage struct {
	ID       string `cbor:"id"`
	Text     string `cbor:"text"`
	SenderID string `cbor:"sender_id"`
	At       int64  `cbor:"at"`
}

// Viewer dumps the stored channel collection as a table, in key order
// (which is chronological order thanks to the padded timestamp keys).
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in read-only mode.
	// BypassLockGuard allows opening while a client holds the lock.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	path := domain.ChannelPath(config.AppID, config.Channel)
	prefix := []byte(fmt.Sprintf("msg:%s:", path))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "Sender", "ID", "Text"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var msg storedMessage
				if err := cbor.Unmarshal(value, &msg); err != nil {
					return err
				}
				table.Append([]string{
					time.Unix(0, msg.At).UTC().Format(time.RFC3339),
					msg.SenderID,
					msg.ID,
					msg.Text,
				})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to read channel: %v", err)
	}

	fmt.Printf("Channel %s (%d messages)\n\n", path, count)
	table.Render()
}
