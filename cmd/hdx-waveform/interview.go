/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"hdxwave/internal/codec"
	"hdxwave/internal/config"
	"hdxwave/pkg/spec"

	"github.com/chzyer/readline"
)

var (
	// errInputClosed: stdin habis (EOF) atau Ctrl-C saat interview.
	errInputClosed = errors.New("interactive input closed")
	errQuit        = errors.New("quit")
)

// lineReader adalah bagian dari *readline.Instance yang dipakai interview.
type lineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// runInterview dipakai jika tidak ada input di command line. Jawaban terakhir
// disimpan di session file dan jadi default untuk run berikutnya.
func runInterview(cfg config.Config) (config.Config, []string, error) {
	sessPath := config.SessionPath()

	rl, err := readline.NewEx(&readline.Config{
		Prompt: ">> ",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItemDynamic(func(line string) []string {
				return listFiles(line)
			}),
		),
	})
	if err != nil {
		return cfg, nil, fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	sess, src, err := interview(rl, config.LoadSession(sessPath, cfg))
	if err != nil {
		return cfg, nil, err
	}
	if err := config.SaveSession(sessPath, sess); err != nil {
		fmt.Printf("[WARN] session not saved: %v\n", err)
	}
	return sess.Apply(cfg), findAudio(src), nil
}

// interview menanyakan semua pilihan sampai dijawab "y". Mengembalikan
// errInputClosed jika input habis, errQuit jika user memilih keluar.
func interview(rl lineReader, sess config.Session) (config.Session, string, error) {
	for {
		fmt.Printf("\n=== %s: INTERACTIVE MODE ===\n", strings.ToUpper(spec.AppName))
		fmt.Println("(Tip: Use TAB to autocomplete paths)")
		src, err := askValidPath(rl, "1. Source (file or directory)", "")
		if err != nil {
			return sess, "", err
		}
		next := sess
		if next.Width, err = askInt(rl, "2. Width", sess.Width); err != nil {
			return sess, "", err
		}
		if next.Height, err = askInt(rl, "3. Height", sess.Height); err != nil {
			return sess, "", err
		}
		if next.Background, err = askColor(rl, "4. Background", sess.Background); err != nil {
			return sess, "", err
		}
		if next.Foreground, err = askColor(rl, "5. Foreground", sess.Foreground); err != nil {
			return sess, "", err
		}
		if next.Output, err = ask(rl, "6. Output Directory (empty = next to input)", sess.Output); err != nil {
			return sess, "", err
		}
		maxCPU := runtime.NumCPU()
		if next.Workers, err = askInt(rl, "7. Worker Count (1-"+strconv.Itoa(maxCPU)+")", sess.Workers); err != nil {
			return sess, "", err
		}

		fmt.Println("\n--- REVIEW SELECTIONS ---")
		fmt.Printf(" [Source]     : %s\n [Size]       : %dx%d\n", src, next.Width, next.Height)
		fmt.Printf(" [Background] : %s\n [Foreground] : %s\n", next.Background, next.Foreground)
		fmt.Printf(" [Output]     : %s\n [Workers]    : %d\n", next.Output, next.Workers)
		fmt.Println("--------------------------")

		ans, err := ask(rl, "Proceed? (y) Yes / (r) Restart / (q) Quit", "y")
		if err != nil {
			return sess, "", err
		}
		switch ans {
		case "y":
			return next, src, nil
		case "q":
			return sess, "", errQuit
		}
	}
}

func ask(rl lineReader, label, defaultVal string) (string, error) {
	rl.SetPrompt(fmt.Sprintf("%s [%s]: ", label, defaultVal))
	line, err := rl.Readline()
	if err != nil {
		// readline.ErrInterrupt (Ctrl-C) diperlakukan sama dengan EOF
		return "", fmt.Errorf("%w: %v", errInputClosed, err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultVal, nil
	}
	return line, nil
}

func askInt(rl lineReader, label string, defaultVal int) (int, error) {
	for {
		s, err := ask(rl, label, strconv.Itoa(defaultVal))
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n, nil
		}
		fmt.Println(" [!] Enter a positive number.")
	}
}

func askColor(rl lineReader, label, defaultVal string) (string, error) {
	for {
		c, err := ask(rl, label, defaultVal)
		if err != nil {
			return "", err
		}
		if _, err := config.ParseHexColor(c); err == nil {
			return c, nil
		}
		fmt.Println(" [!] Use a hex color like #ff8000.")
	}
}

func askValidPath(rl lineReader, label, defaultVal string) (string, error) {
	for {
		p, err := ask(rl, label, defaultVal)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
		fmt.Println(" [!] Path does not exist.")
	}
}

func listFiles(line string) []string {
	dir := filepath.Dir(line)
	if line == "" {
		dir = "."
	}
	entries, _ := os.ReadDir(dir)
	var names []string
	for _, e := range entries {
		name := filepath.Join(dir, e.Name())
		if strings.HasPrefix(name, line) {
			names = append(names, name)
		}
	}
	return names
}

// findAudio: file tunggal dikembalikan apa adanya, direktori di-scan untuk
// semua ekstensi yang punya decoder.
func findAudio(root string) []string {
	s, err := os.Stat(root)
	if err != nil {
		return nil
	}
	if !s.IsDir() {
		return []string{root}
	}
	var f []string
	filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && renderable(p) {
			f = append(f, p)
		}
		return nil
	})
	sort.Strings(f)
	return f
}

func renderable(p string) bool {
	return codec.Supported(p) || strings.EqualFold(filepath.Ext(p), spec.VolumeExt)
}
