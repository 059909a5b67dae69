package bench

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/marekgalovic/pdist/pkg/sysinfo"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type Result struct {
	Kernel         string        `yaml:"kernel"`
	Runs           int           `yaml:"runs"`
	Min            time.Duration `yaml:"min"`
	Mean           time.Duration `yaml:"mean"`
	Max            time.Duration `yaml:"max"`
	PairsPerSecond float64       `yaml:"pairs_per_second"`
	Speedup        float64       `yaml:"speedup"`
	MaxAbsDiff     float64       `yaml:"max_abs_diff"`
	OK             bool          `yaml:"ok"`
}

type Report struct {
	ID            string        `yaml:"id"`
	StartedAt     time.Time     `yaml:"started_at"`
	Points        int           `yaml:"points"`
	Dimension     int           `yaml:"dimension"`
	Pairs         int           `yaml:"pairs"`
	Reference     string        `yaml:"reference"`
	ReferenceTime time.Duration `yaml:"reference_time"`
	Host          sysinfo.Info  `yaml:"host"`
	Results       []Result      `yaml:"results"`
}

func (this *Report) RenderTable(w io.Writer) {
	fmt.Fprintf(w, "run %s: %d points, %d dims, %d pairs on %s\n", this.ID, this.Points, this.Dimension, this.Pairs, this.Host.CPU)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"kernel", "runs", "min", "mean", "max", "pairs/s", "speedup", "max diff", "ok"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range this.Results {
		table.Append([]string{
			r.Kernel,
			strconv.Itoa(r.Runs),
			r.Min.String(),
			r.Mean.String(),
			r.Max.String(),
			fmt.Sprintf("%.3g", r.PairsPerSecond),
			fmt.Sprintf("%.2fx", r.Speedup),
			fmt.Sprintf("%.2g", r.MaxAbsDiff),
			strconv.FormatBool(r.OK),
		})
	}
	table.Render()
}

func (this *Report) RenderYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(this); err != nil {
		return err
	}
	return enc.Close()
}
