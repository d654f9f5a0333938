package report

import (
	"errors"
	"fmt"

	"github.com/spacesedan/sentiboard/internal/analysis"
	"github.com/spacesedan/sentiboard/internal/charts"
	"github.com/spacesedan/sentiboard/internal/models"
)

const (
	RAW_CLOUD_WIDTH     = 1000
	STEMMED_CLOUD_WIDTH = 900
	CLOUD_HEIGHT        = 400
)

func (r *Renderer) dataUnderstanding() (*Page, error) {
	page := &Page{Title: "📁 Data Understanding"}

	page.Sections = append(page.Sections,
		heading(2, "🔍 Preview Dataset"),
		table(r.ds.Head(r.cfg.PreviewRows), previewColumns),
		markdown(fmt.Sprintf("📌 Total Data: **%d** ulasan", r.ds.Len())),
	)

	rating, err := histogramSection(r.ds.Ints(func(rv models.Review) int { return rv.Score }),
		RATING_BINS, "Distribusi Rating (1–5)", true)
	if err != nil {
		return nil, err
	}
	page.Sections = append(page.Sections, heading(2, "⭐ Distribusi Rating Pengguna"), rating)

	length, err := histogramSection(r.ds.Ints(func(rv models.Review) int { return rv.ReviewLength }),
		REVIEW_LENGTH_BINS, "Distribusi Panjang Kalimat Ulasan", false)
	if err != nil {
		return nil, err
	}
	page.Sections = append(page.Sections, heading(2, "✍ Distribusi Panjang Ulasan (jumlah kata)"), length)

	contents := r.ds.Column(models.ContentColumn.Value)

	top := analysis.TopWords(contents, r.cfg.TopWords)
	bars := make([]charts.Bar, len(top))
	for i, w := range top {
		bars[i] = charts.Bar{Label: w.Word, Value: float64(w.Count)}
	}
	topWords, err := barSection(bars, fmt.Sprintf("Top %d Kata Terbanyak", r.cfg.TopWords), false)
	if err != nil {
		return nil, err
	}
	page.Sections = append(page.Sections, heading(2, "📌 Kata yang Paling Sering Muncul"), topWords)

	cloud, err := wordCloudSection(contents, RAW_CLOUD_WIDTH, "WordCloud Sebelum Preprocessing")
	if err != nil {
		return nil, err
	}
	page.Sections = append(page.Sections, heading(2, "☁️ WordCloud Sebelum Preprocessing"), cloud)

	return page, nil
}

func (r *Renderer) dataPreparation() (*Page, error) {
	page := &Page{Title: "⚙️ Data Preparation"}

	page.Sections = append(page.Sections,
		heading(2, "📌 Kolom Hasil Preprocessing"),
		table(r.ds.Head(r.cfg.PreviewRows), models.PreprocessingColumns),
	)

	cloud, err := wordCloudSection(r.ds.Column(models.StemmedTextColumn.Value), STEMMED_CLOUD_WIDTH, "WordCloud Setelah Preprocessing")
	if err != nil {
		return nil, err
	}
	page.Sections = append(page.Sections, heading(2, "☁️ WordCloud Setelah Preprocessing"), cloud)

	return page, nil
}

func (r *Renderer) modelingEvaluation(col models.LabelColumn) (*Page, error) {
	if col == "" {
		col = models.LabelColumns[0]
	}
	modal, err := analysis.Modal(r.ds, col)
	if err != nil {
		return nil, err
	}

	options := make([]string, len(models.LabelColumns))
	for i, c := range models.LabelColumns {
		options[i] = c.String()
	}
	page := &Page{
		Title: "📊 Modeling & Evaluation",
		Control: &Control{
			Kind:    ControlSelect,
			Heading: "Pilih Label yang Ingin Ditampilkan",
			Label:   "Pilih salah satu:",
			Options: options,
			Value:   col.String(),
		},
	}

	bars := make([]charts.Bar, len(modal.Summary.Categories))
	for i, c := range modal.Summary.Categories {
		bars[i] = charts.Bar{Label: c.Label, Value: float64(c.Count)}
	}
	dist, err := barSection(bars, "Distribusi "+col.String(), true)
	if err != nil {
		return nil, err
	}

	cloud, err := wordCloudSection(modal.StemmedTexts(), STEMMED_CLOUD_WIDTH, "WordCloud "+modal.Mode)
	if err != nil {
		return nil, err
	}

	page.Sections = append(page.Sections,
		markdown(fmt.Sprintf("### 🔍 Menampilkan hasil untuk: **%s**", col)),
		columns(
			[]Section{heading(3, "📊 Distribusi Sentimen"), dist},
			[]Section{heading(3, "☁️ WordCloud Berdasarkan Label"), cloud},
		),
		heading(2, "📑 Dataset Hasil Sentimen"),
		table(r.ds.Head(r.cfg.PreviewRows), []models.TextColumn{col.TextColumn(), models.ContentColumn, models.StemmedTextColumn}),
	)
	return page, nil
}

func histogramSection(values []int, bins int, title string, colorful bool) (Section, error) {
	buckets := analysis.Histogram(values, bins)
	bars := make([]charts.Bar, len(buckets))
	for i, b := range buckets {
		bars[i] = charts.Bar{Label: b.Label(), Value: float64(b.Count)}
	}
	return barSection(bars, title, colorful)
}

// barSection renders bars, or an info notice when there is nothing to plot.
func barSection(bars []charts.Bar, title string, colorful bool) (Section, error) {
	png, err := charts.BarChart(bars, charts.BarOptions{Title: title, Colorful: colorful})
	if errors.Is(err, charts.ErrNoData) {
		return alert(AlertInfo, "Tidak ada data untuk ditampilkan.", ""), nil
	}
	if err != nil {
		return Section{}, fmt.Errorf("failed to render %q: %w", title, err)
	}
	return image(title, png, charts.DEFAULT_CHART_WIDTH, charts.DEFAULT_CHART_HEIGHT), nil
}

// wordCloudSection renders a cloud over texts. An empty corpus yields an
// info notice instead of a blank canvas.
func wordCloudSection(texts []string, width int, alt string) (Section, error) {
	img, err := charts.WordCloud(analysis.WordWeights(texts), charts.DefaultWordCloudOptions(width, CLOUD_HEIGHT))
	if err != nil {
		return Section{}, fmt.Errorf("failed to render %q: %w", alt, err)
	}
	if img.Blank {
		return alert(AlertInfo, "Tidak ada kata untuk ditampilkan pada word cloud.", ""), nil
	}
	return image(alt, img.PNG, img.Width, img.Height), nil
}
