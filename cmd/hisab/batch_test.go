package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisab-cli/hisab/internal/common"
	"github.com/hisab-cli/hisab/internal/parser"
)

func TestCapBatch(t *testing.T) {
	makeMessages := func(n int) []string {
		msgs := make([]string, n)
		for i := range msgs {
			msgs[i] = fmt.Sprintf("message %d", i)
		}
		return msgs
	}

	tests := []struct {
		wantErr error
		name    string
		count   int
	}{
		{name: "single message", count: 1},
		{name: "exactly at the cap", count: parser.MaxBatchSize},
		{name: "one over the cap", count: parser.MaxBatchSize + 1, wantErr: common.ErrBatchTooLarge},
		{name: "empty", count: 0, wantErr: common.ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := capBatch(makeMessages(tt.count))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.count)
		})
	}
}

func TestParseAllReportsProgressPerMessage(t *testing.T) {
	p := parser.New(parser.NewDefaultRegistry())
	messages := []string{
		"POS Purchase for 45.00 SAR at: STARBUCKS on: 08/06/2025",
		"POS Purchase for 12.50 SAR at: PANDA on: 09/06/2025",
		"POS Purchase for 99.00 SAR at: NOON on: 10/06/2025",
	}

	var itemsSeen []int
	items := parseAll(p, messages, func() {
		itemsSeen = append(itemsSeen, len(itemsSeen)+1)
	})

	require.Len(t, items, len(messages))
	// One tick per message, fired as each item completes.
	assert.Equal(t, []int{1, 2, 3}, itemsSeen)
	for i, item := range items {
		assert.Equal(t, i, item.Index)
		assert.NoError(t, item.Err)
	}
}

func TestParseAllNilProgress(t *testing.T) {
	p := parser.New(parser.NewDefaultRegistry())

	items := parseAll(p, []string{"some unstructured text"}, nil)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].Index)
}

func TestReadBatchFileSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.txt")
	content := "first message\n\n   \nsecond message\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	messages, err := readBatchFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first message", "second message"}, messages)
}

func TestReadBatchFileRejectsOversizedFileBeforeParsing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.txt")
	var sb strings.Builder
	for i := 0; i < parser.MaxBatchSize+1; i++ {
		fmt.Fprintf(&sb, "message %d\n", i)
	}
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	_, err := readBatchFile(path)
	assert.ErrorIs(t, err, common.ErrBatchTooLarge)
}
