package main

import (
	"path/filepath"
	"testing"
)

func TestOpenBoardSource(t *testing.T) {
	dir := t.TempDir()
	oldScores, oldDB := flagScores, flagDBPath
	t.Cleanup(func() { flagScores, flagDBPath = oldScores, oldDB })

	flagScores = filepath.Join(dir, "scores.txt")
	flagDBPath = ""
	board, source, closeBoard, err := openBoard(10)
	if err != nil {
		t.Fatalf("openBoard() failed: %v", err)
	}
	closeBoard()
	if source != flagScores {
		t.Errorf("source = %q, expected %q", source, flagScores)
	}
	if err := board.Submit("AAA", 10); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	flagDBPath = filepath.Join(dir, "scores.db")
	board, source, closeBoard, err = openBoard(10)
	if err != nil {
		t.Fatalf("openBoard() with --db failed: %v", err)
	}
	defer closeBoard()
	if source != flagDBPath {
		t.Errorf("source = %q, expected %q", source, flagDBPath)
	}
	if best, err := board.Best(); err != nil || best != 0 {
		t.Errorf("Best() = %d, %v, expected empty database", best, err)
	}
}
