package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// dir holds optional asset files. The sheet and sea loop are generated when
// no file is there, so nothing is embedded.
const dir = "assets"

const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context, creating it on first
// use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadImage decodes an image file from ./assets.
func LoadImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadFile reads an asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean)))
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", clean, err)
	}
	return data, nil
}

// LoadAudioPlayer loads an audio asset and creates an audio player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := AudioContext()
	clean := strings.ToLower(cleanAssetPath(path))
	reader := bytes.NewReader(b)

	if strings.HasSuffix(clean, ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return ctx.NewPlayerFromBytes(b), nil
}

// SeaPlayer returns a looping player for the ambient sea. assets/sea.wav is
// preferred; otherwise the loop is synthesised.
func SeaPlayer() (*audio.Player, error) {
	if p, err := LoadAudioPlayer("sea.wav"); err == nil {
		return p, nil
	}
	pcm := SeaLoop(SampleRate, 4, 1)
	return AudioContext().NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
}

// SheetImage returns the sprite sheet: spritesheet.png when present,
// otherwise the generated placeholder sheet.
func SheetImage() image.Image {
	if img, err := LoadImage("spritesheet.png"); err == nil {
		return img
	}
	return SpriteSheet()
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
