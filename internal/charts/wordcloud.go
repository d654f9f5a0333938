package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"sort"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/spacesedan/sentiboard/internal/analysis"
)

const (
	WORDCLOUD_MAX_WORDS     = 200
	WORDCLOUD_MIN_FONT_SIZE = 10.0
	WORDCLOUD_MAX_FONT_SIZE = 96.0
	wordPadding             = 2
	spiralStep              = 4.0
	fontShrink              = 0.85
)

var wordColors = []color.RGBA{
	{0x44, 0x01, 0x54, 0xff},
	{0x3b, 0x52, 0x8b, 0xff},
	{0x21, 0x90, 0x8d, 0xff},
	{0x5d, 0xc9, 0x63, 0xff},
	{0x31, 0x68, 0x8e, 0xff},
	{0x44, 0x3a, 0x83, 0xff},
	{0x28, 0xae, 0x80, 0xff},
}

var loadFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

type WordCloudOptions struct {
	Width       int
	Height      int
	Background  color.Color
	MaxWords    int
	MinFontSize float64
	MaxFontSize float64
}

func DefaultWordCloudOptions(width, height int) WordCloudOptions {
	return WordCloudOptions{
		Width:       width,
		Height:      height,
		Background:  color.White,
		MaxWords:    WORDCLOUD_MAX_WORDS,
		MinFontSize: WORDCLOUD_MIN_FONT_SIZE,
		MaxFontSize: WORDCLOUD_MAX_FONT_SIZE,
	}
}

type WordCloudImage struct {
	PNG    []byte
	Width  int
	Height int
	// Placed is the number of words drawn. Blank is set when the corpus
	// had no words at all; the image is then the bare background.
	Placed int
	Blank  bool
}

// WordCloud lays out words largest first along a spiral from the canvas
// centre, with font size proportional to the word's count. The layout has
// no randomness, so equal input renders the same image. Words that cannot
// be placed even at the minimum size are skipped.
func WordCloud(words []analysis.WordCount, opts WordCloudOptions) (WordCloudImage, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return WordCloudImage{}, fmt.Errorf("invalid word cloud canvas %dx%d", opts.Width, opts.Height)
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.MaxWords <= 0 {
		opts.MaxWords = WORDCLOUD_MAX_WORDS
	}
	if opts.MinFontSize <= 0 {
		opts.MinFontSize = WORDCLOUD_MIN_FONT_SIZE
	}
	if opts.MaxFontSize < opts.MinFontSize {
		opts.MaxFontSize = opts.MinFontSize
	}

	canvas := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	out := WordCloudImage{Width: opts.Width, Height: opts.Height}

	words = rank(words, opts.MaxWords)
	if len(words) == 0 {
		out.Blank = true
		return encode(canvas, out)
	}

	f, err := loadFont()
	if err != nil {
		return WordCloudImage{}, fmt.Errorf("failed to load word cloud font: %w", err)
	}

	layout := &cloudLayout{
		bounds: canvas.Bounds().Inset(wordPadding),
		center: image.Pt(opts.Width/2, opts.Height/2),
		aspect: float64(opts.Height) / float64(opts.Width),
	}
	maxCount := float64(words[0].Count)

	for i, wc := range words {
		size := opts.MinFontSize + (opts.MaxFontSize-opts.MinFontSize)*float64(wc.Count)/maxCount
		for ; size >= opts.MinFontSize; size *= fontShrink {
			face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
			if layout.place(canvas, face, wc.Word, wordColors[i%len(wordColors)]) {
				out.Placed++
				face.Close()
				break
			}
			face.Close()
		}
	}

	return encode(canvas, out)
}

// rank drops empty entries, orders by descending count keeping input order
// on ties, and truncates to limit.
func rank(words []analysis.WordCount, limit int) []analysis.WordCount {
	ranked := make([]analysis.WordCount, 0, len(words))
	for _, w := range words {
		if w.Word != "" && w.Count > 0 {
			ranked = append(ranked, w)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

type cloudLayout struct {
	bounds image.Rectangle
	center image.Point
	aspect float64
	placed []image.Rectangle
}

func (l *cloudLayout) place(dst draw.Image, face font.Face, word string, c color.Color) bool {
	b, _ := font.BoundString(face, word)
	w := (b.Max.X - b.Min.X).Ceil()
	h := (b.Max.Y - b.Min.Y).Ceil()
	if w <= 0 || h <= 0 || w > l.bounds.Dx() || h > l.bounds.Dy() {
		return false
	}

	maxRadius := math.Hypot(float64(l.bounds.Dx()), float64(l.bounds.Dy())) / 2
	for r := 0.0; r <= maxRadius; r += spiralStep {
		steps := max(1, int(2*math.Pi*r/spiralStep))
		for s := 0; s < steps; s++ {
			theta := 2*math.Pi*float64(s)/float64(steps) + r/spiralStep
			x := l.center.X + int(r*math.Cos(theta)) - w/2
			y := l.center.Y + int(r*math.Sin(theta)*l.aspect) - h/2
			rect := image.Rect(x, y, x+w, y+h)
			if !rect.In(l.bounds) || l.collides(rect) {
				continue
			}

			d := &font.Drawer{
				Dst:  dst,
				Src:  image.NewUniform(c),
				Face: face,
				Dot:  fixed.P(x-b.Min.X.Floor(), y-b.Min.Y.Floor()),
			}
			d.DrawString(word)
			l.placed = append(l.placed, rect.Inset(-wordPadding))
			return true
		}
	}
	return false
}

func (l *cloudLayout) collides(rect image.Rectangle) bool {
	for _, p := range l.placed {
		if p.Overlaps(rect) {
			return true
		}
	}
	return false
}

func encode(img image.Image, out WordCloudImage) (WordCloudImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return WordCloudImage{}, fmt.Errorf("failed to encode word cloud: %w", err)
	}
	out.PNG = buf.Bytes()
	return out, nil
}
