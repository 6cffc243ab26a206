package models

import (
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"sftpsync/internal/syncer"
)

// SyncResult is the record printed by the get command. Processed and
// Skipped carry remote base names in listing order.
type SyncResult struct {
	Changed        bool     `json:"changed"`
	RemotePath     string   `json:"remote_path"`
	Pattern        string   `json:"pattern"`
	LocalPath      string   `json:"local_path"`
	Processed      []string `json:"processed"`
	ProcessedCount int      `json:"processed_count"`
	Skipped        []string `json:"skipped"`
	Failed         []string `json:"failed,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
	TotalSizeBytes int64    `json:"total_size_bytes"`
	TotalSizeHuman string   `json:"total_size_human"`
	OperationTime  string   `json:"operation_time"`
	Duration       string   `json:"duration"`
	CheckMode      bool     `json:"check_mode,omitempty"`
}

// FetchResult is the record printed by the fetch command.
type FetchResult struct {
	Changed       bool     `json:"changed"`
	Src           string   `json:"src"`
	LocalFile     string   `json:"local_file"`
	Skipped       []string `json:"skipped"`
	Warnings      []string `json:"warnings,omitempty"`
	OperationTime string   `json:"operation_time"`
	CheckMode     bool     `json:"check_mode,omitempty"`
}

// FindResult is the record printed by the find command. FilesFound holds
// normalized absolute remote paths, FileNames the matching base names.
type FindResult struct {
	Changed    bool     `json:"changed"`
	RemotePath string   `json:"remote_path"`
	Pattern    string   `json:"pattern"`
	FilesFound []string `json:"files_found"`
	FileNames  []string `json:"file_names"`
}

func NewSyncResult(res *syncer.Result, checkMode bool) *SyncResult {
	out := &SyncResult{
		Changed:        res.Changed,
		RemotePath:     res.RemotePath,
		Pattern:        res.Pattern,
		LocalPath:      res.LocalDir,
		Processed:      fileNames(res.Processed),
		ProcessedCount: len(res.Processed),
		Skipped:        fileNames(res.Skipped),
		Warnings:       res.Warnings,
		TotalSizeBytes: res.BytesCopied,
		TotalSizeHuman: humanize.Bytes(uint64(res.BytesCopied)),
		OperationTime:  res.Started.Format(time.RFC3339),
		Duration:       res.Duration.String(),
		CheckMode:      checkMode,
	}
	for _, f := range res.Failed {
		out.Failed = append(out.Failed, f.Err.Error())
	}
	return out
}

func NewFetchResult(res *syncer.Result, checkMode bool) *FetchResult {
	out := &FetchResult{
		Changed:       res.Changed,
		Src:           res.RemotePath,
		Skipped:       fileNames(res.Skipped),
		Warnings:      res.Warnings,
		OperationTime: res.Started.Format(time.RFC3339),
		CheckMode:     checkMode,
	}
	var name string
	if len(res.Processed) > 0 {
		name = res.Processed[0].Name
	} else if len(res.Skipped) > 0 {
		name = res.Skipped[0].Name
	}
	if name != "" {
		out.LocalFile = filepath.Join(res.LocalDir, name)
	}
	return out
}

func NewFindResult(res *syncer.Result) *FindResult {
	return &FindResult{
		Changed:    res.Changed,
		RemotePath: res.RemotePath,
		Pattern:    res.Pattern,
		FilesFound: append([]string{}, res.Found...),
		FileNames:  fileNames(res.Matched),
	}
}

func fileNames(files []syncer.RemoteFile) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}
