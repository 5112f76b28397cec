package admin

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const defaultChartHeight = "320px"

// ChartPoint is one datum of an overview chart.
type ChartPoint struct {
	Label string    `json:"label"`
	Value float64   `json:"value"`
	Pair  []float64 `json:"pair,omitempty"`
}

// ChartSeries is a named point series.
type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// ChartRenderer renders overview charts to embeddable HTML through
// go-echarts, optionally memoized by a render cache.
type ChartRenderer struct {
	cache      RenderCache
	theme      string
	assetsHost string
}

// ChartRendererOption configures NewChartRenderer.
type ChartRendererOption func(*ChartRenderer)

// WithChartCache memoizes rendered HTML.
func WithChartCache(cache RenderCache) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.cache = cache
	}
}

// WithChartTheme picks the echarts theme.
func WithChartTheme(theme string) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.theme = theme
	}
}

// WithChartAssetsHost serves the echarts runtime from a custom host instead
// of the default CDN.
func WithChartAssetsHost(host string) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.assetsHost = host
	}
}

// NewChartRenderer builds a renderer with the default theme.
func NewChartRenderer(options ...ChartRendererOption) *ChartRenderer {
	r := &ChartRenderer{theme: "white"}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// RenderedChart is one chart ready for template embedding.
type RenderedChart struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	HTML  string `json:"html"`
}

// Bar renders a bar chart over the series' labels.
func (r *ChartRenderer) Bar(title, subtitle string, series []ChartSeries) (string, error) {
	return r.cached("bar", title, series, func() (string, error) {
		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalChartOptions(title, subtitle)...)
		bar.SetXAxis(axisLabels(series))
		for _, s := range series {
			bar.AddSeries(s.Name, toBarData(s.Points))
		}
		return renderChart(bar)
	})
}

// Line renders a smoothed line chart.
func (r *ChartRenderer) Line(title, subtitle string, series []ChartSeries) (string, error) {
	return r.cached("line", title, series, func() (string, error) {
		line := charts.NewLine()
		line.SetGlobalOptions(r.globalChartOptions(title, subtitle)...)
		line.SetXAxis(axisLabels(series))
		for _, s := range series {
			line.AddSeries(s.Name, toLineData(s.Points))
		}
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return renderChart(line)
	})
}

// Pie renders a pie chart from a single series.
func (r *ChartRenderer) Pie(title string, series ChartSeries) (string, error) {
	return r.cached("pie", title, []ChartSeries{series}, func() (string, error) {
		pie := charts.NewPie()
		pie.SetGlobalOptions(r.globalChartOptions(title, "")...)
		pie.AddSeries(series.Name, toPieData(series.Points))
		return renderChart(pie)
	})
}

// Gauge renders a single-value gauge.
func (r *ChartRenderer) Gauge(title string, series ChartSeries) (string, error) {
	return r.cached("gauge", title, []ChartSeries{series}, func() (string, error) {
		gauge := charts.NewGauge()
		gauge.SetGlobalOptions(r.globalChartOptions(title, "")...)
		if len(series.Points) > 0 {
			gauge.AddSeries(series.Name, []opts.GaugeData{
				{Name: series.Name, Value: series.Points[0].Value},
			})
		}
		return renderChart(gauge)
	})
}

func (r *ChartRenderer) cached(chartType, title string, series []ChartSeries, render func() (string, error)) (string, error) {
	if r.cache == nil {
		return render()
	}
	key := fmt.Sprintf("%s:%s:%s:%s", chartType, r.theme, title, seriesHash(series))
	return r.cache.GetOrRender(key, render)
}

func seriesHash(series []ChartSeries) string {
	payload := make(map[string]any, len(series))
	for _, s := range series {
		payload[s.Name] = s.Points
	}
	return configHash(payload)
}

func (r *ChartRenderer) globalChartOptions(title, subtitle string) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  r.theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if r.assetsHost != "" {
		initOpts.AssetsHost = r.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithToolboxOpts(opts.Toolbox{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// axisLabels uses the first series' labels as the shared x axis.
func axisLabels(series []ChartSeries) []string {
	if len(series) == 0 {
		return nil
	}
	labels := make([]string, len(series[0].Points))
	for i, point := range series[0].Points {
		labels[i] = point.Label
	}
	return labels
}

func toBarData(points []ChartPoint) []opts.BarData {
	data := make([]opts.BarData, len(points))
	for i, point := range points {
		data[i] = opts.BarData{
			Name:  point.Label,
			Value: point.Value,
		}
	}
	return data
}

func toLineData(points []ChartPoint) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, point := range points {
		data[i] = opts.LineData{
			Name:  point.Label,
			Value: point.Value,
		}
	}
	return data
}

func toPieData(points []ChartPoint) []opts.PieData {
	data := make([]opts.PieData, len(points))
	for i, point := range points {
		name := point.Label
		if name == "" {
			name = fmt.Sprintf("Slice %d", i+1)
		}
		data[i] = opts.PieData{
			Name:  name,
			Value: point.Value,
		}
	}
	return data
}
