// Package assets provides the ASCII frames drawn by the game.
// Frames are embedded in the binary; a directory with the same layout can
// override any of them.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/orbit/internal/core"
)

// ErrNoFrames is returned when a frame or frame directory is empty or missing.
var ErrNoFrames = errors.New("assets: no frames")

//go:embed frames
var embedded embed.FS

// Frame file names, relative to the frames root.
const (
	ShipFrame1    = "rocket_frame_1.txt"
	ShipFrame2    = "rocket_frame_2.txt"
	GameOverFrame = "game_over.txt"
	GarbageDir    = "garbage"
	ExplosionDir  = "explosion"
)

// Library loads frames by name. Override files win over embedded ones.
type Library struct {
	base     fs.FS
	override fs.FS
}

// New returns a library backed by the embedded frames only.
func New() *Library {
	base, err := fs.Sub(embedded, "frames")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded frames: %v", err))
	}
	return &Library{base: base}
}

// Open returns a library whose files in dir override the embedded frames.
// An empty dir is the same as New.
func Open(dir string) (*Library, error) {
	lib := New()
	if dir == "" {
		return lib, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", dir)
	}
	lib.override = os.DirFS(dir)
	return lib, nil
}

// Load reads one frame. Trailing newlines are trimmed.
func (l *Library) Load(name string) (string, error) {
	data, err := l.read(name)
	if err != nil {
		return "", err
	}
	frame := normalize(string(data))
	if frame == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNoFrames, name)
	}
	return frame, nil
}

// LoadDir reads every .txt frame in dir, ordered by file name. Override
// files replace embedded files of the same name and add to the set.
func (l *Library) LoadDir(dir string) ([]string, error) {
	names := make(map[string]struct{})
	for _, fsys := range l.layers() {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("assets: reading %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".txt") {
				continue
			}
			names[e.Name()] = struct{}{}
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFrames, dir)
	}

	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	frames := make([]string, 0, len(sorted))
	for _, n := range sorted {
		frame, err := l.Load(path.Join(dir, n))
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// Ship returns the two alternating ship frames.
func (l *Library) Ship() ([2]string, error) {
	var frames [2]string
	for i, name := range []string{ShipFrame1, ShipFrame2} {
		f, err := l.Load(name)
		if err != nil {
			return frames, err
		}
		frames[i] = f
	}
	r1, c1 := core.FrameSize(frames[0])
	r2, c2 := core.FrameSize(frames[1])
	if r1 != r2 || c1 != c2 {
		return frames, fmt.Errorf("assets: ship frames differ in size (%dx%d vs %dx%d)", r1, c1, r2, c2)
	}
	return frames, nil
}

// Garbage returns every falling obstacle frame.
func (l *Library) Garbage() ([]string, error) {
	return l.LoadDir(GarbageDir)
}

// GameOver returns the game over banner.
func (l *Library) GameOver() (string, error) {
	return l.Load(GameOverFrame)
}

// Explosion returns the explosion frames in playback order.
func (l *Library) Explosion() ([]string, error) {
	return l.LoadDir(ExplosionDir)
}

// Frames holds every frame the game draws.
type Frames struct {
	Ship      [2]string
	Garbage   []string
	GameOver  string
	Explosion []string
}

// All loads every frame the game needs.
func (l *Library) All() (Frames, error) {
	var f Frames
	var err error
	if f.Ship, err = l.Ship(); err != nil {
		return f, err
	}
	if f.Garbage, err = l.Garbage(); err != nil {
		return f, err
	}
	if f.GameOver, err = l.GameOver(); err != nil {
		return f, err
	}
	if f.Explosion, err = l.Explosion(); err != nil {
		return f, err
	}
	return f, nil
}

func (l *Library) read(name string) ([]byte, error) {
	for _, fsys := range l.layers() {
		data, err := fs.ReadFile(fsys, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: reading %s: %w", name, err)
		}
	}
	return nil, fmt.Errorf("%w: %s not found", ErrNoFrames, name)
}

// layers returns the file systems to search, override first.
func (l *Library) layers() []fs.FS {
	if l.override == nil {
		return []fs.FS{l.base}
	}
	return []fs.FS{l.override, l.base}
}

func normalize(frame string) string {
	frame = strings.ReplaceAll(frame, "\r\n", "\n")
	return strings.TrimRight(frame, "\n")
}
